package domain

// DraftSettings are shared across every draft request of a run.
type DraftSettings struct {
	Style           string `json:"style"`
	LengthLimit     int    `json:"length_limit"`
	EvidenceCharCap int    `json:"evidence_char_cap"`
}

// DefaultDraftSettings mirrors the service defaults for a new workspace.
func DefaultDraftSettings() DraftSettings {
	return DraftSettings{Style: "Formal, outcome-oriented", LengthLimit: 300}
}

// DraftInputs carries the solution anchor and shared settings into one
// draft request. The anchor is duplicated into Prompt and SolutionAnchor
// for compatibility with both generator revisions. EvidenceCharCap is
// omitted when zero; EvidenceLabels is omitted when the operator made no
// explicit selection, which means server-default evidence, not none.
type DraftInputs struct {
	Prompt          string   `json:"prompt"`
	SolutionAnchor  string   `json:"solution_anchor"`
	Style           string   `json:"style"`
	LengthLimit     int      `json:"length_limit"`
	EvidenceCharCap int      `json:"evidence_char_cap,omitempty"`
	EvidenceLabels  []string `json:"evidence_labels,omitempty"`
}

// DraftRequest is the wire payload for POST /v1/draft.
type DraftRequest struct {
	SessionID      string      `json:"session_id"`
	SectionID      string      `json:"section_id"`
	SectionVariant string      `json:"section_variant,omitempty"`
	Inputs         DraftInputs `json:"inputs"`
}

// Evaluation scores a generated section.
type Evaluation struct {
	Score float64 `json:"score"`
}

// DraftResult is one generated section, keyed by section id in the
// workspace. Last write wins; results are only ever overwritten.
type DraftResult struct {
	Output       string     `json:"output"`
	Framework    string     `json:"framework"`
	Evaluation   Evaluation `json:"evaluation"`
	EvidenceUsed []string   `json:"evidence_used"`
}
