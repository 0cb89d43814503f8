// Package workflow holds the transition rules for the six-step proposal
// run. State lives in domain.WorkflowState; the functions here advance
// it in response to domain events and never regress a finished step.
package workflow
