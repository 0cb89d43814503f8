package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"proposer/internal/domain"
)

// API is the JSON-over-HTTP client for the core proposal service.
type API struct {
	Base string
	HTTP *http.Client
}

// NewAPI returns an API client rooted at base with trailing slashes
// normalized. A nil client falls back to http.DefaultClient.
func NewAPI(base string, client *http.Client) *API {
	if client == nil {
		client = http.DefaultClient
	}
	return &API{Base: strings.TrimRight(base, "/"), HTTP: client}
}

func (c *API) Features(ctx context.Context) (domain.FeatureFlags, error) {
	var out domain.FeatureFlags
	return out, c.getJSON(ctx, "/v1/config/features", &out)
}

func (c *API) ActivePrompts(ctx context.Context) (domain.ActiveConfig, error) {
	var out domain.ActiveConfig
	return out, c.getJSON(ctx, "/v1/prompts/active", &out)
}

func (c *API) CreateSession(ctx context.Context, grant domain.Grant, companyName string) (string, error) {
	in := struct {
		Grant       domain.Grant `json:"grant"`
		CompanyName string       `json:"company_name"`
	}{Grant: grant, CompanyName: companyName}
	var out struct {
		SessionID string `json:"session_id"`
	}
	if err := c.post(ctx, "/v1/session", in, &out); err != nil {
		return "", err
	}
	return out.SessionID, nil
}

func (c *API) Checklist(ctx context.Context, sid string) ([]domain.ChecklistTask, error) {
	var out struct {
		Tasks []domain.ChecklistTask `json:"tasks"`
	}
	path := "/v1/session/" + url.PathEscape(sid) + "/checklisttest"
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *API) DetectedEvidence(ctx context.Context, sid string, preview int) ([]domain.EvidenceItem, error) {
	var out struct {
		Items []domain.EvidenceItem `json:"items"`
	}
	path := "/v1/debug/evidence/" + url.PathEscape(sid)
	if preview > 0 {
		path += "?preview=" + strconv.Itoa(preview)
	}
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *API) SaveFacts(ctx context.Context, sid string, facts domain.Facts) error {
	return c.post(ctx, "/v1/session/"+url.PathEscape(sid)+"/facts", facts, nil)
}

func (c *API) Validate(ctx context.Context, sid string) ([]domain.ValidationCheck, error) {
	var out struct {
		Checks []domain.ValidationCheck `json:"checks"`
	}
	if err := c.post(ctx, "/v1/session/"+url.PathEscape(sid)+"/validate", struct{}{}, &out); err != nil {
		return nil, err
	}
	return out.Checks, nil
}

func (c *API) Draft(ctx context.Context, req domain.DraftRequest) (domain.DraftResult, error) {
	var out domain.DraftResult
	if err := c.post(ctx, "/v1/draft", req, &out); err != nil {
		return domain.DraftResult{}, err
	}
	return out, nil
}

func (c *API) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(http.MethodPost, c.Base+path, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *API) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(http.MethodGet, c.Base+path, resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.ProposalAPI = (*API)(nil)
