// Package session creates proposal runs against the grant/workflow
// selection, fetches the session checklist, and loads the environment
// configuration shown to the operator.
package session
