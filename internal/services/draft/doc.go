// Package draft drives section generation: single sections on demand,
// or the whole checklist sequentially with fixed-interval pacing and
// per-section failure tolerance. It also assembles the review text and
// copies it to the clipboard.
package draft
