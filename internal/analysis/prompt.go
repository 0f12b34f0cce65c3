package analysis

import (
	"fmt"
	"strings"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/jurisdiction"
)

// BuildBriefPrompt assembles the user prompt for brief analysis. When the
// jurisdiction resolver found something, its formatted block is merged in so
// the model grounds court routing on verified facts instead of guessing.
func BuildBriefPrompt(briefText string, enrich *jurisdiction.Enrichment) string {
	var b strings.Builder

	b.WriteString("Analyze the following legal brief from India.\n\n")

	if enrich != nil && enrich.Prompt != "" {
		b.WriteString(enrich.Prompt)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "BRIEF:\n%s\n\n", briefText)

	b.WriteString(`Respond with strict JSON in this shape:
{"summary": "...", "key_issues": ["..."], "applicable_laws": ["..."]}
- summary: two to four sentences covering the dispute and the relief sought.
- key_issues: the legal questions the brief raises.
- applicable_laws: Indian statutes and provisions that likely apply.`)

	return b.String()
}
