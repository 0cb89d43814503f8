package draft_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"proposer/internal/domain"
	"proposer/internal/logging"
	"proposer/internal/services/draft"
	"proposer/internal/store"
)

type fakeAPI struct {
	domain.ProposalAPI

	draft func(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error)
	calls []domain.DraftRequest
}

func (f *fakeAPI) Draft(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
	f.calls = append(f.calls, req)
	return f.draft(ctx, req)
}

type fakeClipboard struct {
	texts []string
	err   error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

func newService(t *testing.T, api *fakeAPI, clip *fakeClipboard) *draft.Service {
	t.Helper()
	return draft.New(api, store.NewWorkspaceFileStore(t.TempDir()), clip, logging.Nop(), time.Millisecond)
}

func readyWorkspace() *domain.Workspace {
	ws := domain.NewWorkspace()
	ws.Session.ID = "sid-1"
	ws.SolutionAnchor = "Improve efficiency"
	ws.Checklist.Drafts = []domain.ChecklistTask{
		{ID: "executive_summary", Type: domain.TaskDraft},
		{ID: "project_scope", Type: domain.TaskDraft, SectionVariant: "psg"},
		{ID: "outcomes", Type: domain.TaskDraft},
	}
	return ws
}

func TestSection_StoresResult(t *testing.T) {
	api := &fakeAPI{
		draft: func(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
			return domain.DraftResult{Output: "text for " + req.SectionID, Framework: "STAR"}, nil
		},
	}
	svc := newService(t, api, &fakeClipboard{})
	ws := readyWorkspace()

	res, err := svc.Section(context.Background(), ws, "executive_summary", "")
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	if res.Output == "" {
		t.Fatal("empty output")
	}
	if ws.Outputs["executive_summary"].Framework != "STAR" {
		t.Fatalf("stored = %+v", ws.Outputs["executive_summary"])
	}
	if ws.Workflow.Status[domain.StepDraft] != domain.StepDone {
		t.Fatalf("draft step = %q", ws.Workflow.Status[domain.StepDraft])
	}

	// Re-drafting overwrites unconditionally.
	api.draft = func(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
		return domain.DraftResult{Output: "second pass"}, nil
	}
	if _, err := svc.Section(context.Background(), ws, "executive_summary", ""); err != nil {
		t.Fatalf("section: %v", err)
	}
	if ws.Outputs["executive_summary"].Output != "second pass" {
		t.Fatalf("result not overwritten: %+v", ws.Outputs["executive_summary"])
	}
}

func TestSection_Preconditions(t *testing.T) {
	api := &fakeAPI{
		draft: func(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
			return domain.DraftResult{}, nil
		},
	}
	svc := newService(t, api, &fakeClipboard{})

	ws := readyWorkspace()
	ws.Session.ID = ""
	if _, err := svc.Section(context.Background(), ws, "executive_summary", ""); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}

	ws = readyWorkspace()
	ws.SolutionAnchor = "  "
	if _, err := svc.Section(context.Background(), ws, "executive_summary", ""); !errors.Is(err, domain.ErrNoAnchor) {
		t.Fatalf("err = %v, want ErrNoAnchor", err)
	}

	if len(api.calls) != 0 {
		t.Fatalf("rejected preconditions still issued %d requests", len(api.calls))
	}
}

func TestSection_InputShape(t *testing.T) {
	api := &fakeAPI{
		draft: func(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
			return domain.DraftResult{Output: "x"}, nil
		},
	}
	svc := newService(t, api, &fakeClipboard{})
	ws := readyWorkspace()
	ws.SharedDraft.EvidenceCharCap = 6000
	ws.EvidenceSelected = []string{"bizfile"}

	if _, err := svc.Section(context.Background(), ws, "project_scope", "psg"); err != nil {
		t.Fatalf("section: %v", err)
	}

	req := api.calls[0]
	if req.SectionVariant != "psg" {
		t.Fatalf("variant = %q", req.SectionVariant)
	}
	in := req.Inputs
	if in.Prompt != ws.SolutionAnchor || in.SolutionAnchor != ws.SolutionAnchor {
		t.Fatalf("anchor not duplicated: %+v", in)
	}
	if in.EvidenceCharCap != 6000 {
		t.Fatalf("cap = %d", in.EvidenceCharCap)
	}
	if len(in.EvidenceLabels) != 1 || in.EvidenceLabels[0] != "bizfile" {
		t.Fatalf("labels = %v", in.EvidenceLabels)
	}
}

func TestAll_PartialFailure(t *testing.T) {
	api := &fakeAPI{
		draft: func(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
			if req.SectionID == "project_scope" {
				return domain.DraftResult{}, errors.New("model overloaded")
			}
			return domain.DraftResult{Output: "text for " + req.SectionID}, nil
		},
	}
	svc := newService(t, api, &fakeClipboard{})
	ws := readyWorkspace()

	res, err := svc.All(context.Background(), ws)
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	// Requests go out in checklist order, every task processed.
	if len(api.calls) != 3 {
		t.Fatalf("calls = %d", len(api.calls))
	}
	for i, want := range []string{"executive_summary", "project_scope", "outcomes"} {
		if api.calls[i].SectionID != want {
			t.Fatalf("call %d = %q, want %q", i, api.calls[i].SectionID, want)
		}
	}

	if len(res.Drafted) != 2 || len(res.Failed) != 1 {
		t.Fatalf("summary = %+v", res)
	}
	if _, ok := ws.Outputs["executive_summary"]; !ok {
		t.Fatal("non-failing section missing output")
	}
	if _, ok := ws.Outputs["outcomes"]; !ok {
		t.Fatal("section after the failure missing output")
	}
	if _, ok := ws.Outputs["project_scope"]; ok {
		t.Fatal("failed section stored an output")
	}

	// Batch completion opens review regardless of failures.
	if ws.Workflow.Status[domain.StepDraft] != domain.StepDone {
		t.Fatalf("draft step = %q", ws.Workflow.Status[domain.StepDraft])
	}
	if ws.Workflow.Status[domain.StepReview] != domain.StepInProgress {
		t.Fatalf("review step = %q", ws.Workflow.Status[domain.StepReview])
	}
}

func TestAll_Preconditions(t *testing.T) {
	api := &fakeAPI{
		draft: func(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
			return domain.DraftResult{}, nil
		},
	}
	svc := newService(t, api, &fakeClipboard{})

	ws := readyWorkspace()
	ws.SolutionAnchor = ""
	if _, err := svc.All(context.Background(), ws); !errors.Is(err, domain.ErrNoAnchor) {
		t.Fatalf("err = %v, want ErrNoAnchor", err)
	}

	ws = readyWorkspace()
	ws.Checklist.Drafts = nil
	if _, err := svc.All(context.Background(), ws); !errors.Is(err, domain.ErrNoDraftTasks) {
		t.Fatalf("err = %v, want ErrNoDraftTasks", err)
	}

	if len(api.calls) != 0 {
		t.Fatalf("rejected batch still issued %d requests", len(api.calls))
	}
}

func TestSaveAnchor(t *testing.T) {
	st := store.NewWorkspaceFileStore(t.TempDir())
	svc := draft.New(&fakeAPI{}, st, &fakeClipboard{}, logging.Nop(), time.Millisecond)
	ws := domain.NewWorkspace()

	settings := domain.DraftSettings{Style: "Concise", LengthLimit: 250, EvidenceCharCap: -5}
	if err := svc.SaveAnchor(ws, "Improve efficiency", settings); err != nil {
		t.Fatalf("save anchor: %v", err)
	}
	if ws.SharedDraft.EvidenceCharCap != 0 {
		t.Fatalf("cap = %d, want clamped to 0", ws.SharedDraft.EvidenceCharCap)
	}
	if ws.Workflow.Status[domain.StepAnchor] != domain.StepDone {
		t.Fatalf("anchor step = %q", ws.Workflow.Status[domain.StepAnchor])
	}

	p, ok, err := st.LoadWorkspace()
	if err != nil || !ok {
		t.Fatalf("load workspace: ok=%v err=%v", ok, err)
	}
	if p.SolutionAnchor != "Improve efficiency" || p.DraftStyle != "Concise" {
		t.Fatalf("persisted = %+v", p)
	}
}

func TestCopy(t *testing.T) {
	clip := &fakeClipboard{}
	svc := newService(t, &fakeAPI{}, clip)
	ws := readyWorkspace()
	ws.Outputs["executive_summary"] = domain.DraftResult{Output: "summary text"}
	ws.Outputs["project_scope"] = domain.DraftResult{Output: "scope text"}

	if err := svc.CopySection(ws, "executive_summary"); err != nil {
		t.Fatalf("copy section: %v", err)
	}
	if clip.texts[0] != "summary text" {
		t.Fatalf("copied = %q", clip.texts[0])
	}
	if ws.Workflow.Status[domain.StepReview] != domain.StepDone {
		t.Fatalf("review step = %q", ws.Workflow.Status[domain.StepReview])
	}

	if err := svc.CopyAll(ws); err != nil {
		t.Fatalf("copy all: %v", err)
	}
	want := "=== executive_summary ===\n\nsummary text\n\n=== project_scope (psg) ===\n\nscope text"
	if clip.texts[1] != want {
		t.Fatalf("combined = %q", clip.texts[1])
	}

	if err := svc.CopySection(ws, "outcomes"); !errors.Is(err, domain.ErrNoOutput) {
		t.Fatalf("err = %v, want ErrNoOutput", err)
	}
}
