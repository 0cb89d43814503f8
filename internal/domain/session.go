package domain

// Grant identifies which grant programme a proposal run targets.
type Grant string

const (
	GrantEDG Grant = "EDG"
	GrantPSG Grant = "PSG"
)

// WorkflowType selects the document set a run produces. Only the grant
// workflow carries a grant selection; "other" is future-ready.
type WorkflowType string

const (
	WorkflowGrant WorkflowType = "grant"
	WorkflowOther WorkflowType = "other"
)

// Session is the remote proposal run a workspace is attached to.
// Immutable once created; the id is issued by the session service.
type Session struct {
	ID           string       `json:"session_id"`
	Grant        Grant        `json:"grant"`
	WorkflowType WorkflowType `json:"workflow_type"`
	CompanyName  string       `json:"company_name"`
}
