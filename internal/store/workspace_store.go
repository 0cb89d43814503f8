package store

import (
	"path/filepath"
	"sync"

	"proposer/internal/domain"
)

const workspaceFilename = "workspace.json"

// WorkspaceFileStore persists the durable workspace subset to disk.
type WorkspaceFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewWorkspaceFileStore returns a WorkspaceFileStore rooted at dir.
func NewWorkspaceFileStore(dir string) *WorkspaceFileStore {
	return &WorkspaceFileStore{dir: dir}
}

// SaveWorkspace writes the persisted subset, replacing any prior snapshot.
func (s *WorkspaceFileStore) SaveWorkspace(p domain.PersistedWorkspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, workspaceFilename), p, 0o600)
}

// LoadWorkspace retrieves the persisted subset, reporting whether a
// snapshot exists.
func (s *WorkspaceFileStore) LoadWorkspace() (domain.PersistedWorkspace, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.PersistedWorkspace
	ok, err := readJSON(filepath.Join(s.dir, workspaceFilename), &p)
	if err != nil {
		return domain.PersistedWorkspace{}, false, err
	}
	return p, ok, nil
}

// Compile-time assertion that WorkspaceFileStore implements domain.WorkspaceStore.
var _ domain.WorkspaceStore = (*WorkspaceFileStore)(nil)
