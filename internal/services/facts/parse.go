package facts

import (
	"encoding/json"
	"strings"
)

// ExtraOutcome tags how operator-entered extra text was interpreted.
type ExtraOutcome int

const (
	ExtraEmpty ExtraOutcome = iota
	ExtraJSON
	ExtraKeyValue
	ExtraUnparsed
)

func (o ExtraOutcome) String() string {
	switch o {
	case ExtraEmpty:
		return "empty"
	case ExtraJSON:
		return "json"
	case ExtraKeyValue:
		return "key:value"
	default:
		return "unparsed"
	}
}

// ParseExtra interprets free-form extra facts: a strict JSON object
// first, then permissive key:value lines. Input that fits neither is
// reported as ExtraUnparsed with a nil map rather than silently dropped,
// so the caller can tell the operator.
func ParseExtra(text string) (map[string]any, ExtraOutcome) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ExtraEmpty
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, ExtraJSON
	}

	kv := map[string]any{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if !found || key == "" || strings.TrimSpace(val) == "" {
			continue
		}
		kv[key] = strings.TrimSpace(val)
	}
	if len(kv) > 0 {
		return kv, ExtraKeyValue
	}
	return nil, ExtraUnparsed
}
