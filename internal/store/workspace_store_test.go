package store_test

import (
	"testing"

	"proposer/internal/domain"
	"proposer/internal/store"
)

func TestWorkspace_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()

	var ws domain.WorkspaceStore = store.NewWorkspaceFileStore(home)

	p := domain.PersistedWorkspace{
		SessionID:        "sid-1",
		Grant:            domain.GrantEDG,
		WorkflowType:     domain.WorkflowGrant,
		SolutionAnchor:   "Improve efficiency",
		DraftStyle:       "Formal, outcome-oriented",
		DraftLengthLimit: 300,
		DraftEvidenceCap: 6000,
	}
	if err := ws.SaveWorkspace(p); err != nil {
		t.Fatalf("save workspace: %v", err)
	}

	got, ok, err := ws.LoadWorkspace()
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	if !ok {
		t.Fatal("expected a persisted snapshot")
	}
	if got != p {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

func TestWorkspace_Load_Missing(t *testing.T) {
	var ws domain.WorkspaceStore = store.NewWorkspaceFileStore(t.TempDir())

	_, ok, err := ws.LoadWorkspace()
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	if ok {
		t.Fatal("expected no snapshot in a fresh home")
	}
}

func TestWorkspace_Save_Overwrites(t *testing.T) {
	home := t.TempDir()
	s := store.NewWorkspaceFileStore(home)

	if err := s.SaveWorkspace(domain.PersistedWorkspace{SessionID: "old"}); err != nil {
		t.Fatalf("save workspace: %v", err)
	}
	if err := s.SaveWorkspace(domain.PersistedWorkspace{SessionID: "new"}); err != nil {
		t.Fatalf("save workspace: %v", err)
	}

	got, _, err := s.LoadWorkspace()
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	if got.SessionID != "new" {
		t.Fatalf("session id = %q, want new", got.SessionID)
	}
}
