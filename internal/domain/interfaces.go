package domain

import (
	"context"
	"io"
)

// ProposalAPI is the core proposal service consumed by the orchestrators.
type ProposalAPI interface {
	Features(ctx context.Context) (FeatureFlags, error)
	ActivePrompts(ctx context.Context) (ActiveConfig, error)
	CreateSession(ctx context.Context, grant Grant, companyName string) (string, error)
	Checklist(ctx context.Context, sid string) ([]ChecklistTask, error)
	DetectedEvidence(ctx context.Context, sid string, preview int) ([]EvidenceItem, error)
	SaveFacts(ctx context.Context, sid string, facts Facts) error
	Validate(ctx context.Context, sid string) ([]ValidationCheck, error)
	Draft(ctx context.Context, req DraftRequest) (DraftResult, error)
}

// UploadBroker issues write-once upload URLs and performs the direct
// blob write for the two-phase evidence transfer.
type UploadBroker interface {
	IssueUploadURL(ctx context.Context, sid, label, filename string) (string, error)
	PutBlob(ctx context.Context, uploadURL, contentType string, body io.Reader) error
}

// WorkspaceStore persists the durable workspace subset.
type WorkspaceStore interface {
	SaveWorkspace(p PersistedWorkspace) error
	LoadWorkspace() (PersistedWorkspace, bool, error)
}

// Clipboard abstracts the system clipboard for the review step.
type Clipboard interface {
	WriteAll(text string) error
}
