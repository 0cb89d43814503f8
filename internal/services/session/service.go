package session

import (
	"context"
	"fmt"
	"log/slog"

	"proposer/internal/domain"
	"proposer/internal/workflow"
)

// Fixed for now; the session service only uses it as a display name.
const companyName = "SmartGrant Pte Ltd"

// Service creates proposal runs and keeps the checklist current.
type Service struct {
	api   domain.ProposalAPI
	store domain.WorkspaceStore
	log   *slog.Logger
}

// New constructs a Session Service with the given API client and store.
func New(api domain.ProposalAPI, store domain.WorkspaceStore, log *slog.Logger) *Service {
	return &Service{api: api, store: store, log: log}
}

// Create starts a new run against the grant/workflow selection and
// immediately fetches its checklist.
//
// The grant is carried only for the grant workflow; any other workflow
// type submits the EDG default the service expects. On success the
// session id is stored and persisted, and the workflow advances to
// evidence collection. Errors surface to the operator; there is no retry.
func (s *Service) Create(ctx context.Context, ws *domain.Workspace, workflowType domain.WorkflowType, grant domain.Grant) error {
	ws.Session.WorkflowType = workflowType
	effective := domain.GrantEDG
	if workflowType == domain.WorkflowGrant {
		effective = grant
		ws.Session.Grant = grant
	}

	sid, err := s.api.CreateSession(ctx, effective, companyName)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	ws.Session.ID = sid
	ws.Session.CompanyName = companyName
	if err := s.store.SaveWorkspace(ws.Snapshot()); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.log.Info("session created", "sid", sid, "grant", effective, "workflow", workflowType)

	if err := s.LoadChecklist(ctx, ws); err != nil {
		return err
	}

	workflow.SessionCreated(&ws.Workflow)
	return nil
}

// LoadChecklist fetches the full task list and partitions it into
// uploads and drafts. A missing session makes it a no-op; repeated calls
// overwrite the previous checklist (last fetch wins).
func (s *Service) LoadChecklist(ctx context.Context, ws *domain.Workspace) error {
	if ws.Session.ID == "" {
		return nil
	}
	tasks, err := s.api.Checklist(ctx, ws.Session.ID)
	if err != nil {
		return fmt.Errorf("load checklist: %w", err)
	}
	ws.Checklist = domain.PartitionTasks(tasks)
	return nil
}

// LoadEnv populates the environment view: feature flags first, then a
// best-effort overlay from the active prompt configuration. A missing
// overlay is logged and tolerated.
func (s *Service) LoadEnv(ctx context.Context, ws *domain.Workspace) error {
	flags, err := s.api.Features(ctx)
	if err != nil {
		return fmt.Errorf("load features: %w", err)
	}
	ws.Env = domain.EnvConfig{
		FeaturePSGEnabled: flags.FeaturePSGEnabled,
		ModelWorker:       flags.ModelWorker,
		PacksLatest:       flags.PacksLatest,
		AppConfigLabel:    "default",
	}

	active, err := s.api.ActivePrompts(ctx)
	if err != nil {
		s.log.Warn("active prompt config unavailable", "err", err)
		return nil
	}
	if active.AppConfigLabel != "" {
		ws.Env.AppConfigLabel = active.AppConfigLabel
	}
	if active.ModelWorker != "" {
		ws.Env.ModelWorker = active.ModelWorker
	}
	if active.ModelManager != "" {
		ws.Env.ModelManager = active.ModelManager
	}
	if active.PacksLatest != nil {
		ws.Env.PacksLatest = active.PacksLatest
	}
	return nil
}
