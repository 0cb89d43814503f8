package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"proposer/internal/domain"
)

type sessionState struct {
	grant   domain.Grant
	company string
	facts   domain.Facts
	blobs   map[string][]byte
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*sessionState)}
}

func (ms *memoryStore) get(sid string) (*sessionState, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	s, ok := ms.sessions[sid]
	return s, ok
}

func newSessionID() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return "sess-" + hex.EncodeToString(buf)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

var checklist = []domain.ChecklistTask{
	{ID: "acra_bizfile", Type: domain.TaskUpload},
	{ID: "financial_statements", Type: domain.TaskUpload},
	{ID: "vendor_quote", Type: domain.TaskUpload},
	{ID: "project_overview", Type: domain.TaskDraft, SectionVariant: "standard"},
	{ID: "solution_approach", Type: domain.TaskDraft},
	{ID: "outcomes", Type: domain.TaskDraft, SectionVariant: "quantified"},
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	ms := newMemoryStore()

	http.HandleFunc("POST /v1/session", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var in struct {
			Grant       domain.Grant `json:"grant"`
			CompanyName string       `json:"company_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, 400, err.Error())
			return
		}
		sid := newSessionID()
		ms.mu.Lock()
		ms.sessions[sid] = &sessionState{
			grant:   in.Grant,
			company: in.CompanyName,
			facts:   domain.Facts{},
			blobs:   make(map[string][]byte),
		}
		ms.mu.Unlock()
		fmt.Println("Created session", sid, "for", in.CompanyName, "grant", in.Grant)
		writeJSON(w, map[string]string{"session_id": sid})
	})

	http.HandleFunc("GET /v1/session/{sid}/checklisttest", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ms.get(r.PathValue("sid")); !ok {
			writeError(w, 404, "unknown session")
			return
		}
		writeJSON(w, map[string]any{"tasks": checklist})
	})

	http.HandleFunc("GET /v1/debug/evidence/{sid}", func(w http.ResponseWriter, r *http.Request) {
		s, ok := ms.get(r.PathValue("sid"))
		if !ok {
			writeError(w, 404, "unknown session")
			return
		}
		preview := 120
		if v := r.URL.Query().Get("preview"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				preview = n
			}
		}
		items := []domain.EvidenceItem{}
		ms.mu.RLock()
		for label, blob := range s.blobs {
			text := string(blob)
			if len(text) > preview {
				text = text[:preview]
			}
			items = append(items, domain.EvidenceItem{Label: label, Chars: len(blob), Preview: text})
		}
		ms.mu.RUnlock()
		writeJSON(w, map[string]any{"items": items})
	})

	http.HandleFunc("POST /v1/session/{sid}/facts", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		s, ok := ms.get(r.PathValue("sid"))
		if !ok {
			writeError(w, 404, "unknown session")
			return
		}
		var in domain.Facts
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, 400, err.Error())
			return
		}
		ms.mu.Lock()
		s.facts.Merge(in)
		ms.mu.Unlock()
		w.WriteHeader(200)
	})

	http.HandleFunc("POST /v1/session/{sid}/validate", func(w http.ResponseWriter, r *http.Request) {
		s, ok := ms.get(r.PathValue("sid"))
		if !ok {
			writeError(w, 404, "unknown session")
			return
		}
		checks := []domain.ValidationCheck{}
		ms.mu.RLock()
		if pct, ok := s.facts["local_equity_pct"].(float64); ok && pct < 30 {
			checks = append(checks, domain.ValidationCheck{
				Code:    "EQUITY_BELOW_30",
				Level:   "error",
				Message: "local equity below the 30% eligibility floor",
			})
		}
		if _, ok := s.facts["turnover"]; !ok {
			checks = append(checks, domain.ValidationCheck{
				Code:    "TURNOVER_MISSING",
				Level:   "warning",
				Message: "annual turnover not provided",
			})
		}
		ms.mu.RUnlock()
		writeJSON(w, map[string]any{"checks": checks})
	})

	http.HandleFunc("POST /v1/draft", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req domain.DraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, 400, err.Error())
			return
		}
		s, ok := ms.get(req.SessionID)
		if !ok {
			writeError(w, 404, "unknown session")
			return
		}
		used := req.Inputs.EvidenceLabels
		if used == nil {
			ms.mu.RLock()
			for label := range s.blobs {
				used = append(used, label)
			}
			ms.mu.RUnlock()
		}
		out := fmt.Sprintf("%s (%s, up to %d words)\n\n%s",
			req.SectionID, req.Inputs.Style, req.Inputs.LengthLimit, req.Inputs.SolutionAnchor)
		fmt.Println("Drafted", req.SectionID, "for", req.SessionID)
		writeJSON(w, domain.DraftResult{
			Output:       out,
			Framework:    "baseline",
			Evaluation:   domain.Evaluation{Score: 7.5},
			EvidenceUsed: used,
		})
	})

	http.HandleFunc("GET /v1/config/features", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, domain.FeatureFlags{
			FeaturePSGEnabled: true,
			ModelWorker:       "worker-mini",
			PacksLatest:       map[string]string{"EDG": "2026-07", "PSG": "2026-05"},
		})
	})

	http.HandleFunc("GET /v1/prompts/active", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, domain.ActiveConfig{
			AppConfigLabel: "staging",
			ModelWorker:    "worker-mini",
			ModelManager:   "manager-std",
			PacksLatest:    map[string]string{"EDG": "2026-07", "PSG": "2026-05"},
		})
	})

	http.HandleFunc("POST /api/upload/sas", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var in struct {
			SID      string `json:"sid"`
			Label    string `json:"label"`
			Filename string `json:"filename"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, 400, err.Error())
			return
		}
		if _, ok := ms.get(in.SID); !ok {
			writeError(w, 404, "unknown session")
			return
		}
		url := "http://" + r.Host + "/blob/" + in.SID + "/" + in.Label + "/" + in.Filename
		writeJSON(w, map[string]string{"uploadUrl": url})
	})

	http.HandleFunc("PUT /blob/{sid}/{label}/{filename}", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		s, ok := ms.get(r.PathValue("sid"))
		if !ok {
			writeError(w, 404, "unknown session")
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
		label := r.PathValue("label")
		ms.mu.Lock()
		s.blobs[label] = body
		ms.mu.Unlock()
		fmt.Println("Received blob for", r.PathValue("sid"), "label", label, "bytes", len(body))
		w.WriteHeader(201)
	})

	log.Println("stub services listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
