package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StatusError is a non-2xx response converted into a structured failure.
// Message prefers the server-provided error field, then the raw body,
// then the HTTP status line.
type StatusError struct {
	Method  string
	URL     string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
}

// statusError drains resp and builds the structured failure for it.
func statusError(method, url string, resp *http.Response) error {
	msg := resp.Status
	if b, err := io.ReadAll(resp.Body); err == nil {
		body := strings.TrimSpace(string(b))
		var parsed struct {
			Error string `json:"error"`
		}
		switch {
		case json.Unmarshal(b, &parsed) == nil && parsed.Error != "":
			msg = parsed.Error
		case body != "":
			msg = body
		}
	}
	return &StatusError{Method: method, URL: url, Status: resp.StatusCode, Message: msg}
}
