package analysis

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber wraps the OpenAI Whisper transcription API for dictated
// briefs.
type Transcriber struct {
	client *openai.Client
}

// NewTranscriberFromEnv creates a transcriber from OPENAI_API_KEY.
// Returns nil if the key is not set (graceful degradation).
func NewTranscriberFromEnv() *Transcriber {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return nil
	}
	return &Transcriber{client: openai.NewClient(key)}
}

// Transcribe converts dictated audio into text. fileName is only used to
// infer the audio format from its extension.
func (t *Transcriber) Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: fileName,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}
	return resp.Text, nil
}
