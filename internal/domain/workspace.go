package domain

// Workspace is the single session-scoped state container. It is owned by
// the top-level controller and passed explicitly to every orchestration
// call; there is no parallel mutation, only interleaved suspension at
// network boundaries, so no locking is needed.
type Workspace struct {
	Session          Session
	Env              EnvConfig
	Checklist        Checklist
	EvidenceDetected []EvidenceItem
	EvidenceStatus   map[string]EvidenceStatus
	EvidenceSelected []string
	Facts            Facts
	ValidationChecks []ValidationCheck
	SolutionAnchor   string
	SharedDraft      DraftSettings
	Outputs          map[string]DraftResult
	Workflow         WorkflowState
}

// NewWorkspace returns an empty workspace with defaults applied.
func NewWorkspace() *Workspace {
	return &Workspace{
		Session:        Session{Grant: GrantEDG, WorkflowType: WorkflowGrant},
		EvidenceStatus: map[string]EvidenceStatus{},
		Facts:          Facts{},
		SharedDraft:    DefaultDraftSettings(),
		Outputs:        map[string]DraftResult{},
		Workflow:       NewWorkflowState(),
	}
}

// DisplayStatus resolves the status shown for an upload label. A label
// present in the detected list always displays as detected, regardless
// of the upload-phase status recorded for it.
func (w *Workspace) DisplayStatus(label string) EvidenceStatus {
	for _, item := range w.EvidenceDetected {
		if item.Label == label {
			return EvidenceDetected
		}
	}
	if st, ok := w.EvidenceStatus[label]; ok {
		return st
	}
	return EvidenceNotUploaded
}

// PersistedWorkspace is the durable, best-effort subset written through
// the workspace store for reload continuity. Everything else is
// session-lifetime and reconstructed by re-fetching.
type PersistedWorkspace struct {
	SessionID        string       `json:"session_id,omitempty"`
	Grant            Grant        `json:"grant,omitempty"`
	WorkflowType     WorkflowType `json:"workflow_type,omitempty"`
	SolutionAnchor   string       `json:"solution_anchor,omitempty"`
	DraftStyle       string       `json:"draft_style,omitempty"`
	DraftLengthLimit int          `json:"draft_length_limit,omitempty"`
	DraftEvidenceCap int          `json:"draft_evidence_cap,omitempty"`
}

// Snapshot extracts the durable subset of the workspace.
func (w *Workspace) Snapshot() PersistedWorkspace {
	return PersistedWorkspace{
		SessionID:        w.Session.ID,
		Grant:            w.Session.Grant,
		WorkflowType:     w.Session.WorkflowType,
		SolutionAnchor:   w.SolutionAnchor,
		DraftStyle:       w.SharedDraft.Style,
		DraftLengthLimit: w.SharedDraft.LengthLimit,
		DraftEvidenceCap: w.SharedDraft.EvidenceCharCap,
	}
}

// Hydrate applies a persisted subset onto the workspace, keeping
// defaults for fields the snapshot left empty.
func (w *Workspace) Hydrate(p PersistedWorkspace) {
	if p.SessionID != "" {
		w.Session.ID = p.SessionID
	}
	if p.Grant != "" {
		w.Session.Grant = p.Grant
	}
	if p.WorkflowType != "" {
		w.Session.WorkflowType = p.WorkflowType
	}
	if p.SolutionAnchor != "" {
		w.SolutionAnchor = p.SolutionAnchor
	}
	if p.DraftStyle != "" {
		w.SharedDraft.Style = p.DraftStyle
	}
	if p.DraftLengthLimit > 0 {
		w.SharedDraft.LengthLimit = p.DraftLengthLimit
	}
	if p.DraftEvidenceCap > 0 {
		w.SharedDraft.EvidenceCharCap = p.DraftEvidenceCap
	}
}
