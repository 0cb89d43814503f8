package workflow

import "proposer/internal/domain"

// Navigate sets the active step. Out-of-range requests are ignored
// silently. Visiting a todo step marks it in_progress; navigation never
// fails and never regresses status.
func Navigate(st *domain.WorkflowState, step int) {
	if step < 0 || step >= domain.StepCount {
		return
	}
	st.Active = step
	if st.Status[step] == domain.StepTodo {
		st.Status[step] = domain.StepInProgress
	}
}

// SessionCreated records a successful run creation: start done,
// evidence collection in progress and active.
func SessionCreated(st *domain.WorkflowState) {
	markDone(st, domain.StepStart)
	advance(st, domain.StepEvidence)
	st.Active = domain.StepEvidence
}

// ValidationRan records a validation pass. The snapshot step is done
// only when the run came back clean; findings keep it in progress.
func ValidationRan(st *domain.WorkflowState, checkCount int) {
	if checkCount == 0 {
		markDone(st, domain.StepSnapshot)
		return
	}
	advance(st, domain.StepSnapshot)
}

// AnchorSaved records a successful solution anchor save.
func AnchorSaved(st *domain.WorkflowState) {
	markDone(st, domain.StepAnchor)
}

// SectionDrafted records any successful draft, single or batched.
func SectionDrafted(st *domain.WorkflowState) {
	markDone(st, domain.StepDraft)
}

// AllSectionsDrafted records completion of the sequential batch; the
// review step opens regardless of per-section failures.
func AllSectionsDrafted(st *domain.WorkflowState) {
	markDone(st, domain.StepDraft)
	advance(st, domain.StepReview)
}

// Copied records a successful copy of one section or the full set.
func Copied(st *domain.WorkflowState) {
	markDone(st, domain.StepReview)
}

func markDone(st *domain.WorkflowState, step int) {
	st.Status[step] = domain.StepDone
}

// advance moves a step to in_progress unless it is already done; step
// status is monotone and never regresses.
func advance(st *domain.WorkflowState, step int) {
	if st.Status[step] != domain.StepDone {
		st.Status[step] = domain.StepInProgress
	}
}
