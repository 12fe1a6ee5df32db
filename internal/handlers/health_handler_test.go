package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping() error {
	return f.err
}

func TestHealthzAlwaysOK(t *testing.T) {
	handler := NewHealthHandler(nil, nil, nil)
	rec := httptest.NewRecorder()
	handler.HealthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzReportsReady(t *testing.T) {
	handler := NewHealthHandler(&mockProvider{}, newTestBuilder(t), &fakePinger{})
	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ready" {
		t.Errorf("expected ready, got %s", resp.Status)
	}
}

func TestReadyzFailsWhenDatabaseDown(t *testing.T) {
	handler := NewHealthHandler(&mockProvider{}, newTestBuilder(t), &fakePinger{err: errors.New("connection refused")})
	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Checks["database"].Status != "failed" {
		t.Errorf("expected database check failure, got %+v", resp.Checks)
	}
}

func TestReadyzFailsWithoutProvider(t *testing.T) {
	handler := NewHealthHandler(nil, newTestBuilder(t), &fakePinger{})
	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestInterviewersHandlerListsPersonas(t *testing.T) {
	handler := NewInterviewersHandler()
	rec := httptest.NewRecorder()
	handler.ListHandler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/interviewers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Interviewers []struct {
			ID      string `json:"id"`
			VoiceID string `json:"voiceId"`
		} `json:"interviewers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Interviewers) != 5 {
		t.Fatalf("expected 5 personas, got %d", len(resp.Interviewers))
	}
	for _, p := range resp.Interviewers {
		if p.VoiceID == "" {
			t.Errorf("persona %s has no voice", p.ID)
		}
	}
}
