package domain

// StepStatus is the independent status of one workflow step.
type StepStatus string

const (
	StepTodo       StepStatus = "todo"
	StepInProgress StepStatus = "in_progress"
	StepDone       StepStatus = "done"
)

// The six fixed workflow steps, in order.
const (
	StepStart = iota
	StepEvidence
	StepSnapshot
	StepAnchor
	StepDraft
	StepReview

	StepCount = 6
)

// StepNames are the operator-facing step titles.
var StepNames = [StepCount]string{
	"Start Proposal Run",
	"Evidence Collection",
	"SME Snapshot",
	"Solution Anchor",
	"Draft Document Set",
	"Review / Export",
}

// WorkflowState holds the active step and per-step status. Transition
// rules live in internal/workflow; this is plain state.
type WorkflowState struct {
	Active int                   `json:"active"`
	Status [StepCount]StepStatus `json:"status"`
}

// NewWorkflowState returns all steps todo with step 0 active.
func NewWorkflowState() WorkflowState {
	var ws WorkflowState
	for i := range ws.Status {
		ws.Status[i] = StepTodo
	}
	return ws
}
