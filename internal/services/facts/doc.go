// Package facts captures the SME snapshot (merged key/value facts,
// mirrored server-side) and runs the non-blocking eligibility
// validation. It also parses operator-entered extra facts, accepting
// strict JSON or key:value lines with an explicit unparsed outcome.
package facts
