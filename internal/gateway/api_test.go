package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"proposer/internal/domain"
	"proposer/internal/gateway"
)

func TestNewAPI_NormalizesTrailingSlash(t *testing.T) {
	c := gateway.NewAPI("http://api.example///", nil)
	if c.Base != "http://api.example" {
		t.Fatalf("base = %q", c.Base)
	}
}

func TestCreateSession_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/session" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["grant"] != "EDG" || body["company_name"] == "" {
			t.Fatalf("unexpected body %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"session_id": "sid-1"})
	}))
	defer srv.Close()

	sid, err := gateway.NewAPI(srv.URL, nil).CreateSession(context.Background(), domain.GrantEDG, "SmartGrant Pte Ltd")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sid != "sid-1" {
		t.Fatalf("sid = %q", sid)
	}
}

func TestPost_ServerErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"grant not recognised"}`)
	}))
	defer srv.Close()

	_, err := gateway.NewAPI(srv.URL, nil).CreateSession(context.Background(), "XXX", "co")
	var se *gateway.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want *StatusError, got %v", err)
	}
	if se.Message != "grant not recognised" {
		t.Fatalf("message = %q", se.Message)
	}
	if se.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", se.Status)
	}
}

func TestPost_RawBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream exploded")
	}))
	defer srv.Close()

	err := gateway.NewAPI(srv.URL, nil).SaveFacts(context.Background(), "sid", domain.Facts{})
	var se *gateway.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want *StatusError, got %v", err)
	}
	if se.Message != "upstream exploded" {
		t.Fatalf("message = %q", se.Message)
	}
}

func TestPost_StatusLineFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := gateway.NewAPI(srv.URL, nil).SaveFacts(context.Background(), "sid", domain.Facts{})
	var se *gateway.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want *StatusError, got %v", err)
	}
	if se.Message != "500 Internal Server Error" {
		t.Fatalf("message = %q", se.Message)
	}
}

func TestDraft_PayloadShape(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		_ = json.NewEncoder(w).Encode(domain.DraftResult{Output: "text"})
	}))
	defer srv.Close()

	req := domain.DraftRequest{
		SessionID: "sid-1",
		SectionID: "executive_summary",
		Inputs: domain.DraftInputs{
			Prompt:         "Improve efficiency",
			SolutionAnchor: "Improve efficiency",
			Style:          "Formal",
			LengthLimit:    300,
		},
	}
	if _, err := gateway.NewAPI(srv.URL, nil).Draft(context.Background(), req); err != nil {
		t.Fatalf("draft: %v", err)
	}

	inputs, ok := got["inputs"].(map[string]any)
	if !ok {
		t.Fatalf("payload missing inputs: %v", got)
	}
	if inputs["prompt"] != "Improve efficiency" || inputs["solution_anchor"] != "Improve efficiency" {
		t.Fatalf("anchor not duplicated: %v", inputs)
	}
	// Zero cap and empty label selection must stay off the wire.
	if _, present := inputs["evidence_char_cap"]; present {
		t.Fatalf("evidence_char_cap sent for zero cap")
	}
	if _, present := inputs["evidence_labels"]; present {
		t.Fatalf("evidence_labels sent for empty selection")
	}
	if _, present := got["section_variant"]; present {
		t.Fatalf("section_variant sent when unset")
	}
}

func TestDetectedEvidence_PreviewParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/debug/evidence/sid-1" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("preview") != "120" {
			t.Fatalf("preview = %q", r.URL.Query().Get("preview"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []domain.EvidenceItem{{Label: "bizfile", Chars: 900, Preview: "ACRA"}},
		})
	}))
	defer srv.Close()

	items, err := gateway.NewAPI(srv.URL, nil).DetectedEvidence(context.Background(), "sid-1", 120)
	if err != nil {
		t.Fatalf("detected evidence: %v", err)
	}
	if len(items) != 1 || items[0].Label != "bizfile" {
		t.Fatalf("items = %v", items)
	}
}
