// Package evidence manages the per-label upload lifecycle
// (not_uploaded, uploading, uploaded or error) through the broker's
// two-phase transfer, and reconciles uploads against the server-side
// detection status via an explicit refresh.
package evidence
