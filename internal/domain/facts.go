package domain

// Facts is a free-form key/value snapshot of the subject entity,
// e.g. local_equity_pct, turnover, headcount plus an arbitrary extra map.
type Facts map[string]any

// Merge folds src into f, overwriting colliding keys. Existing keys
// absent from src are kept; saving facts never replaces the snapshot.
func (f Facts) Merge(src Facts) {
	for k, v := range src {
		f[k] = v
	}
}

// ValidationCheck is one non-blocking eligibility finding.
type ValidationCheck struct {
	Code    string `json:"code"`
	Level   string `json:"level"`
	Message string `json:"message"`
}
