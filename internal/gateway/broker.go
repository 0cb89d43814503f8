package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"proposer/internal/domain"
)

const defaultContentType = "application/octet-stream"

// Broker is the JSON-over-HTTP client for the upload broker, plus the
// direct blob write against the URLs it issues.
type Broker struct {
	Base string
	HTTP *http.Client
}

// NewBroker returns a Broker client rooted at base with trailing slashes
// normalized. A nil client falls back to http.DefaultClient.
func NewBroker(base string, client *http.Client) *Broker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Broker{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// IssueUploadURL requests a short-lived, write-scoped upload URL keyed
// by session, label and filename.
func (c *Broker) IssueUploadURL(ctx context.Context, sid, label, filename string) (string, error) {
	in := struct {
		SID      string `json:"sid"`
		Label    string `json:"label"`
		Filename string `json:"filename"`
	}{SID: sid, Label: label, Filename: filename}

	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return "", err
	}
	u := c.Base + "/api/upload/sas"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", statusError(http.MethodPost, u, resp)
	}
	var out struct {
		UploadURL string `json:"uploadUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.UploadURL, nil
}

// PutBlob writes the raw file bytes to an issued upload URL as a block
// blob. An empty content type falls back to octet-stream.
func (c *Broker) PutBlob(ctx context.Context, uploadURL, contentType string, body io.Reader) error {
	if contentType == "" {
		contentType = defaultContentType
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("x-ms-blob-type", "BlockBlob")
	req.Header.Set("Content-Type", contentType)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(http.MethodPut, uploadURL, resp)
	}
	return nil
}

var _ domain.UploadBroker = (*Broker)(nil)
