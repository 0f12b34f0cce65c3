package documents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewOCRClient_NoToken(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "")

	client, err := NewOCRClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Error("expected nil client when HF_API_TOKEN is unset")
	}
}

func TestNewOCRClient_CustomEndpoint(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "test-token")
	t.Setenv("HF_OCR_ENDPOINT", "https://ocr.internal.example/run")

	client, err := NewOCRClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client")
	}
	if client.endpoint != "https://ocr.internal.example/run" {
		t.Errorf("unexpected endpoint: %q", client.endpoint)
	}
}

func TestExtractText(t *testing.T) {
	fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake image bytes"))
	}))
	defer fileServer.Close()

	inference := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Write([]byte(`[{"generated_text": "IN THE COURT OF THE MUNSIFF"}]`))
	}))
	defer inference.Close()

	client := &OCRClient{
		apiToken:   "test-token",
		endpoint:   inference.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	text, err := client.ExtractText(context.Background(), fileServer.URL+"/doc.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "IN THE COURT OF THE MUNSIFF" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractText_FileFetchFails(t *testing.T) {
	fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer fileServer.Close()

	client := &OCRClient{
		apiToken:   "test-token",
		endpoint:   "http://unused.invalid",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := client.ExtractText(context.Background(), fileServer.URL+"/missing.png"); err == nil {
		t.Error("expected error for missing document")
	}
}

func TestExtractText_InferenceError(t *testing.T) {
	fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake image bytes"))
	}))
	defer fileServer.Close()

	inference := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer inference.Close()

	client := &OCRClient{
		apiToken:   "test-token",
		endpoint:   inference.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	_, err := client.ExtractText(context.Background(), fileServer.URL+"/doc.png")
	if err == nil {
		t.Fatal("expected error from failing inference endpoint")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestExtractText_EmptyResult(t *testing.T) {
	fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake image bytes"))
	}))
	defer fileServer.Close()

	inference := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer inference.Close()

	client := &OCRClient{
		apiToken:   "test-token",
		endpoint:   inference.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := client.ExtractText(context.Background(), fileServer.URL+"/doc.png"); err == nil {
		t.Error("expected error for empty OCR result")
	}
}
