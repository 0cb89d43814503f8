package domain

// EvidenceStatus tracks the per-label upload lifecycle. Detection is
// stamped by an explicit refresh and stays until a new upload attempt
// on the same label overwrites it.
type EvidenceStatus string

const (
	EvidenceNotUploaded EvidenceStatus = "not_uploaded"
	EvidenceUploading   EvidenceStatus = "uploading"
	EvidenceUploaded    EvidenceStatus = "uploaded"
	EvidenceDetected    EvidenceStatus = "detected"
	EvidenceError       EvidenceStatus = "error"
)

// EvidenceItem is one server-parsed document, as reported by the
// detection endpoint. Never derived locally.
type EvidenceItem struct {
	Label   string `json:"label"`
	Chars   int    `json:"chars"`
	Preview string `json:"preview"`
}
