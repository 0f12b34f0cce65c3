package analysis

import (
	"strings"
	"testing"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/jurisdiction"
)

func TestParseAnalysisResponse_PlainJSON(t *testing.T) {
	raw := `{"summary": "A tenancy dispute.", "key_issues": ["eviction"], "applicable_laws": ["Kerala Buildings (Lease and Rent Control) Act, 1965"]}`

	out, err := parseAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary != "A tenancy dispute." {
		t.Errorf("unexpected summary: %q", out.Summary)
	}
	if len(out.KeyIssues) != 1 || out.KeyIssues[0] != "eviction" {
		t.Errorf("unexpected key issues: %v", out.KeyIssues)
	}
	if len(out.ApplicableLaws) != 1 {
		t.Errorf("unexpected applicable laws: %v", out.ApplicableLaws)
	}
}

// Models wrap their output in markdown fences even when told not to; the
// parser strips them before decoding.
func TestParseAnalysisResponse_FencedJSON(t *testing.T) {
	for _, raw := range []string{
		"```json\n{\"summary\": \"ok\", \"key_issues\": [], \"applicable_laws\": []}\n```",
		"```\n{\"summary\": \"ok\", \"key_issues\": [], \"applicable_laws\": []}\n```",
		"  {\"summary\": \"ok\"}  ",
	} {
		out, err := parseAnalysisResponse(raw)
		if err != nil {
			t.Errorf("parse %q: unexpected error: %v", raw, err)
			continue
		}
		if out.Summary != "ok" {
			t.Errorf("parse %q: unexpected summary %q", raw, out.Summary)
		}
	}
}

func TestParseAnalysisResponse_Invalid(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		"```json\nnot json\n```",
		`{"key_issues": ["missing summary"]}`,
		"",
	} {
		if _, err := parseAnalysisResponse(raw); err == nil {
			t.Errorf("parse %q: expected error", raw)
		}
	}
}

func TestBuildBriefPrompt_WithEnrichment(t *testing.T) {
	enrich := &jurisdiction.Enrichment{
		Data:   &jurisdiction.Result{Resolved: true},
		Prompt: "JURISDICTION (VERIFIED):\n- District: Alappuzha\n",
	}

	prompt := BuildBriefPrompt("The tenant refuses to vacate the premises.", enrich)

	if !strings.Contains(prompt, "JURISDICTION (VERIFIED)") {
		t.Error("expected jurisdiction block in prompt")
	}
	if !strings.Contains(prompt, "The tenant refuses to vacate the premises.") {
		t.Error("expected brief text in prompt")
	}
	if !strings.Contains(prompt, `"applicable_laws"`) {
		t.Error("expected output-shape instructions in prompt")
	}

	// Jurisdiction context must come before the brief itself.
	if strings.Index(prompt, "JURISDICTION") > strings.Index(prompt, "BRIEF:") {
		t.Error("jurisdiction block must precede the brief")
	}
}

func TestBuildBriefPrompt_WithoutEnrichment(t *testing.T) {
	prompt := BuildBriefPrompt("A contract dispute.", nil)

	if strings.Contains(prompt, "JURISDICTION") {
		t.Error("no jurisdiction block expected without enrichment")
	}
	if !strings.Contains(prompt, "A contract dispute.") {
		t.Error("expected brief text in prompt")
	}
}
