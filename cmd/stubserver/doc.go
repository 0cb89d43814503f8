// Command stubserver runs an in-memory stand-in for the proposal
// service and the upload broker on a single listener, for local
// development against the proposer CLI. Sessions, facts and uploaded
// blobs live in process memory; drafts are synthesized from the
// request inputs.
package main
