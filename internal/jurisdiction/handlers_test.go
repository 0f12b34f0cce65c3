package jurisdiction

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolveHandler(t *testing.T) {
	DefaultResolver = newTestResolver(t)

	req := httptest.NewRequest(http.MethodPost, "/resolve",
		strings.NewReader(`{"text": "property dispute in Panavally Panchayat"}`))
	rec := httptest.NewRecorder()
	ResolveHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type: %q", ct)
	}

	var resp resolveResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Result == nil || !resp.Result.Resolved {
		t.Fatalf("expected resolved result, got %+v", resp.Result)
	}
	if resp.Result.District != "Alappuzha" {
		t.Errorf("expected district Alappuzha, got %q", resp.Result.District)
	}
	if !strings.Contains(resp.Prompt, "JURISDICTION (VERIFIED)") {
		t.Errorf("expected formatted prompt block, got %q", resp.Prompt)
	}
}

func TestResolveHandler_InvalidBody(t *testing.T) {
	DefaultResolver = newTestResolver(t)

	req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	ResolveHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestResolveHandler_EmptyText(t *testing.T) {
	DefaultResolver = newTestResolver(t)

	req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(`{"text": ""}`))
	rec := httptest.NewRecorder()
	ResolveHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp resolveResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Result.Resolved {
		t.Error("expected unresolved result for empty text")
	}
	if resp.Result.Error != "Empty text" {
		t.Errorf("expected error field, got %q", resp.Result.Error)
	}
	if resp.Prompt != "" {
		t.Errorf("expected empty prompt, got %q", resp.Prompt)
	}
}
