// Package store provides file-based persistence for the proposer
// workspace.
//
// Only the durable subset needed for reload continuity is written:
// session id, grant and workflow selection, solution anchor, and the
// shared draft settings. Checklist, evidence, validation checks and
// drafted outputs are session-lifetime state and are reconstructed by
// re-fetching, never persisted. Files are JSON on disk under the
// configured home directory, written atomically via temp-file rename;
// methods are concurrency-safe via internal locking.
package store
