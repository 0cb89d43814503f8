package draft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"proposer/internal/domain"
	"proposer/internal/workflow"
)

// DefaultPause spaces consecutive requests in a batch draft.
const DefaultPause = 500 * time.Millisecond

// Service submits draft requests and assembles the review text.
type Service struct {
	api       domain.ProposalAPI
	store     domain.WorkspaceStore
	clipboard domain.Clipboard
	log       *slog.Logger
	pause     time.Duration
}

// New constructs a Draft Service. pause spaces the sequential batch;
// zero or negative falls back to DefaultPause.
func New(api domain.ProposalAPI, store domain.WorkspaceStore, clipboard domain.Clipboard, log *slog.Logger, pause time.Duration) *Service {
	if pause <= 0 {
		pause = DefaultPause
	}
	return &Service{api: api, store: store, clipboard: clipboard, log: log, pause: pause}
}

// SaveAnchor stores the solution anchor and shared draft settings,
// persists them, and finishes the anchor step. A negative evidence cap
// collapses to zero (no cap on the wire).
func (s *Service) SaveAnchor(ws *domain.Workspace, anchor string, settings domain.DraftSettings) error {
	if settings.EvidenceCharCap < 0 {
		settings.EvidenceCharCap = 0
	}
	ws.SolutionAnchor = anchor
	ws.SharedDraft = settings
	if err := s.store.SaveWorkspace(ws.Snapshot()); err != nil {
		return fmt.Errorf("persist anchor: %w", err)
	}
	workflow.AnchorSaved(&ws.Workflow)
	return nil
}

// Section requests one drafted section and stores the result under its
// section id, overwriting any prior result. Preconditions (session,
// non-empty anchor) are checked before any request and surface as
// operator-visible rejections.
func (s *Service) Section(ctx context.Context, ws *domain.Workspace, sectionID, variant string) (domain.DraftResult, error) {
	if err := s.preconditions(ws); err != nil {
		return domain.DraftResult{}, err
	}

	req := domain.DraftRequest{
		SessionID:      ws.Session.ID,
		SectionID:      sectionID,
		SectionVariant: variant,
		Inputs:         s.inputs(ws),
	}
	result, err := s.api.Draft(ctx, req)
	if err != nil {
		return domain.DraftResult{}, fmt.Errorf("draft %q: %w", sectionID, err)
	}

	ws.Outputs[sectionID] = result
	workflow.SectionDrafted(&ws.Workflow)
	s.log.Info("section drafted", "section", sectionID, "score", result.Evaluation.Score)
	return result, nil
}

// AllResult summarises a sequential batch draft.
type AllResult struct {
	Drafted []string
	Failed  map[string]error
}

// All drafts every checklist draft task in order, pausing a fixed
// interval between requests to respect downstream rate limits. Each
// result is stored before the next request is issued. A failing section
// is logged and skipped; the batch always runs to the end and the draft
// step completes regardless of how many sections failed.
func (s *Service) All(ctx context.Context, ws *domain.Workspace) (AllResult, error) {
	if err := s.preconditions(ws); err != nil {
		return AllResult{}, err
	}
	tasks := ws.Checklist.Drafts
	if len(tasks) == 0 {
		return AllResult{}, domain.ErrNoDraftTasks
	}

	res := AllResult{Failed: map[string]error{}}
	ticker := time.NewTicker(s.pause)
	defer ticker.Stop()

	for i, task := range tasks {
		if _, err := s.Section(ctx, ws, task.ID, task.SectionVariant); err != nil {
			s.log.Error("section draft failed", "section", task.ID, "err", err)
			res.Failed[task.ID] = err
		} else {
			res.Drafted = append(res.Drafted, task.ID)
		}

		if i == len(tasks)-1 {
			break
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return res, ctx.Err()
		}
	}

	workflow.AllSectionsDrafted(&ws.Workflow)
	return res, nil
}

// SectionText returns the drafted output for one section.
func (s *Service) SectionText(ws *domain.Workspace, sectionID string) (string, error) {
	out, ok := ws.Outputs[sectionID]
	if !ok || out.Output == "" {
		return "", domain.ErrNoOutput
	}
	return out.Output, nil
}

// CombinedText joins all drafted sections in checklist order under
// "=== id ===" headers.
func (s *Service) CombinedText(ws *domain.Workspace) (string, error) {
	var parts []string
	for _, task := range ws.Checklist.Drafts {
		out, ok := ws.Outputs[task.ID]
		if !ok {
			continue
		}
		header := task.ID
		if task.SectionVariant != "" {
			header += " (" + task.SectionVariant + ")"
		}
		parts = append(parts, fmt.Sprintf("=== %s ===\n\n%s", header, out.Output))
	}
	if len(parts) == 0 {
		return "", domain.ErrNoOutput
	}
	return strings.Join(parts, "\n\n"), nil
}

// CopySection puts one drafted section on the clipboard and finishes
// the review step.
func (s *Service) CopySection(ws *domain.Workspace, sectionID string) error {
	text, err := s.SectionText(ws, sectionID)
	if err != nil {
		return err
	}
	if err := s.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy %q: %w", sectionID, err)
	}
	workflow.Copied(&ws.Workflow)
	return nil
}

// CopyAll puts the combined document on the clipboard and finishes the
// review step.
func (s *Service) CopyAll(ws *domain.Workspace) error {
	text, err := s.CombinedText(ws)
	if err != nil {
		return err
	}
	if err := s.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy all sections: %w", err)
	}
	workflow.Copied(&ws.Workflow)
	return nil
}

func (s *Service) preconditions(ws *domain.Workspace) error {
	if ws.Session.ID == "" {
		return domain.ErrNoSession
	}
	if strings.TrimSpace(ws.SolutionAnchor) == "" {
		return domain.ErrNoAnchor
	}
	return nil
}

func (s *Service) inputs(ws *domain.Workspace) domain.DraftInputs {
	in := domain.DraftInputs{
		Prompt:         ws.SolutionAnchor,
		SolutionAnchor: ws.SolutionAnchor,
		Style:          ws.SharedDraft.Style,
		LengthLimit:    ws.SharedDraft.LengthLimit,
	}
	if ws.SharedDraft.EvidenceCharCap > 0 {
		in.EvidenceCharCap = ws.SharedDraft.EvidenceCharCap
	}
	// An empty selection means server-default evidence, not none.
	if len(ws.EvidenceSelected) > 0 {
		in.EvidenceLabels = ws.EvidenceSelected
	}
	return in
}
