package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultOCRModel is the Hugging Face inference endpoint used for printed
// and handwritten text recognition.
const DefaultOCRModel = "https://api-inference.huggingface.co/models/microsoft/trocr-base-printed"

// OCRClient wraps the Hugging Face inference API.
type OCRClient struct {
	apiToken   string
	endpoint   string
	httpClient *http.Client
}

// NewOCRClient creates an OCR client from the HF_API_TOKEN env var.
// Returns nil, nil if the token is not set (graceful degradation).
func NewOCRClient() (*OCRClient, error) {
	token := os.Getenv("HF_API_TOKEN")
	if token == "" {
		return nil, nil
	}
	endpoint := os.Getenv("HF_OCR_ENDPOINT")
	if endpoint == "" {
		endpoint = DefaultOCRModel
	}
	return &OCRClient{
		apiToken: token,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type ocrResult struct {
	GeneratedText string `json:"generated_text"`
}

// ExtractText downloads the stored file and runs it through the inference
// endpoint, returning the recognized text.
func (c *OCRClient) ExtractText(ctx context.Context, fileURL string) (string, error) {
	fileReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating file request: %w", err)
	}
	fileResp, err := c.httpClient.Do(fileReq)
	if err != nil {
		return "", fmt.Errorf("fetching document: %w", err)
	}
	defer fileResp.Body.Close()
	if fileResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching document returned HTTP %d", fileResp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(fileResp.Body, 20<<20)) // 20 MiB cap
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("OCR request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("OCR API returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var results []ocrResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("decoding OCR response: %w", err)
	}
	if len(results) == 0 || results[0].GeneratedText == "" {
		return "", fmt.Errorf("OCR returned no text")
	}

	return results[0].GeneratedText, nil
}
