package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultLLMModel is used when LEXASSIST_LLM_MODEL is not set.
const DefaultLLMModel = "claude-sonnet-4-5"

const systemPrompt = "You are a legal research assistant for Indian litigation. " +
	"When verified jurisdiction data is provided, treat it as authoritative and never substitute your own. " +
	"Return strict JSON only."

// BriefAnalyzer is the LLM boundary; handlers depend on this interface so
// tests can substitute a canned caller.
type BriefAnalyzer interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// ClaudeClient calls the Anthropic Messages API.
type ClaudeClient struct {
	client anthropic.Client
	model  string
}

// NewClaudeClientFromEnv builds a client from ANTHROPIC_API_KEY, or errors
// when the key is absent.
func NewClaudeClientFromEnv() (*ClaudeClient, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	model := strings.TrimSpace(os.Getenv("LEXASSIST_LLM_MODEL"))
	if model == "" {
		model = DefaultLLMModel
	}
	return &ClaudeClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

func (c *ClaudeClient) ModelName() string { return c.model }

func (c *ClaudeClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// analysisOutput is the strict-JSON shape the model is instructed to return.
type analysisOutput struct {
	Summary        string   `json:"summary"`
	KeyIssues      []string `json:"key_issues"`
	ApplicableLaws []string `json:"applicable_laws"`
}

// parseAnalysisResponse tolerates a fenced code block around the JSON, which
// models emit even when told not to.
func parseAnalysisResponse(raw string) (*analysisOutput, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var out analysisOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	if out.Summary == "" {
		return nil, errors.New("analysis response missing summary")
	}
	return &out, nil
}
