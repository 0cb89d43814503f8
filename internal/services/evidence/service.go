package evidence

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"proposer/internal/domain"
)

// DefaultPreview bounds the preview length requested on refresh.
const DefaultPreview = 120

// Service drives the broker-mediated, two-phase evidence upload and the
// explicit detection refresh.
type Service struct {
	api    domain.ProposalAPI
	broker domain.UploadBroker
	log    *slog.Logger
}

// New constructs an Evidence Service with the given clients.
func New(api domain.ProposalAPI, broker domain.UploadBroker, log *slog.Logger) *Service {
	return &Service{api: api, broker: broker, log: log}
}

// Upload transfers one operator-selected file for label.
//
// The transfer is two-phase: a short-lived write-scoped URL is requested
// from the broker, then the raw bytes are written directly to it as a
// block blob. The label moves to uploading immediately; a concurrent
// upload to the same label is rejected before any broker request. On
// failure the label is left in the error state so the operator can retry
// with a fresh file selection.
func (s *Service) Upload(ctx context.Context, ws *domain.Workspace, label, filename, contentType string, body io.Reader) error {
	if ws.Session.ID == "" {
		return domain.ErrNoSession
	}
	if ws.EvidenceStatus[label] == domain.EvidenceUploading {
		return domain.ErrUploadInFlight
	}

	ws.EvidenceStatus[label] = domain.EvidenceUploading

	uploadURL, err := s.broker.IssueUploadURL(ctx, ws.Session.ID, label, filename)
	if err != nil {
		ws.EvidenceStatus[label] = domain.EvidenceError
		return fmt.Errorf("issue upload url for %q: %w", label, err)
	}

	if err := s.broker.PutBlob(ctx, uploadURL, contentType, body); err != nil {
		ws.EvidenceStatus[label] = domain.EvidenceError
		return fmt.Errorf("upload %q: %w", label, err)
	}

	ws.EvidenceStatus[label] = domain.EvidenceUploaded
	s.log.Info("evidence uploaded", "label", label, "filename", filename)
	return nil
}

// Refresh replaces the detected-evidence list from the detection
// endpoint and stamps every returned label as detected. Labels absent
// from the result keep whatever upload-phase status they had; detection
// is eventually consistent with upload and is never polled for.
func (s *Service) Refresh(ctx context.Context, ws *domain.Workspace, preview int) error {
	if ws.Session.ID == "" {
		return nil
	}
	if preview <= 0 {
		preview = DefaultPreview
	}
	items, err := s.api.DetectedEvidence(ctx, ws.Session.ID, preview)
	if err != nil {
		return fmt.Errorf("refresh evidence: %w", err)
	}
	ws.EvidenceDetected = items
	for _, item := range items {
		if ws.EvidenceStatus[item.Label] != domain.EvidenceDetected {
			ws.EvidenceStatus[item.Label] = domain.EvidenceDetected
		}
	}
	return nil
}
