// Package gateway provides the HTTP implementations of the
// domain.ProposalAPI and domain.UploadBroker interfaces.
//
// Two independent clients cover the core proposal service and the
// upload broker; the broker client additionally performs the direct
// block-blob PUT against issued upload URLs. All requests are JSON over
// HTTP and accept a context for cancellation and deadlines. There is no
// retry, no timeout override beyond the transport default, and no
// circuit breaking: every failure propagates synchronously to the
// caller, which owns operator-facing reporting. Non-2xx statuses are
// returned as *StatusError with the server-provided error message when
// the body parses as JSON.
package gateway
