package facts

import (
	"context"
	"fmt"
	"log/slog"

	"proposer/internal/domain"
	"proposer/internal/workflow"
)

// Service saves SME fact snapshots and runs eligibility validation.
type Service struct {
	api domain.ProposalAPI
	log *slog.Logger
}

// New constructs a Facts Service with the given API client.
func New(api domain.ProposalAPI, log *slog.Logger) *Service {
	return &Service{api: api, log: log}
}

// Save mirrors the payload server-side and merges it into the local
// snapshot; prior keys absent from payload are kept. An empty payload
// is a no-op.
func (s *Service) Save(ctx context.Context, ws *domain.Workspace, payload domain.Facts) error {
	if ws.Session.ID == "" {
		return domain.ErrNoSession
	}
	if len(payload) == 0 {
		return nil
	}
	if err := s.api.SaveFacts(ctx, ws.Session.ID, payload); err != nil {
		return fmt.Errorf("save facts: %w", err)
	}
	ws.Facts.Merge(payload)
	s.log.Debug("facts saved", "keys", len(payload))
	return nil
}

// Validate runs the non-blocking eligibility checks and replaces the
// check list wholesale. The snapshot step finishes only on a clean run;
// findings never block navigation or further actions.
func (s *Service) Validate(ctx context.Context, ws *domain.Workspace) ([]domain.ValidationCheck, error) {
	if ws.Session.ID == "" {
		return nil, domain.ErrNoSession
	}
	checks, err := s.api.Validate(ctx, ws.Session.ID)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	ws.ValidationChecks = checks
	workflow.ValidationRan(&ws.Workflow, len(checks))
	return checks, nil
}
