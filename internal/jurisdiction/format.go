package jurisdiction

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatForPrompt renders a resolved Result as the labeled plain-text block
// that gets merged into the downstream LLM prompt. Unresolved results render
// as the empty string. Pure formatting, no I/O.
func (r *Resolver) FormatForPrompt(res *Result) string {
	if res == nil || !res.Resolved {
		return ""
	}

	// Caser is stateful, so build one per call rather than sharing.
	title := cases.Title(language.English)

	var b strings.Builder
	switch res.Confidence {
	case ConfidenceVerified:
		b.WriteString("JURISDICTION (VERIFIED):\n")
		fmt.Fprintf(&b, "- District: %s\n", res.District)
		fmt.Fprintf(&b, "- State: %s\n", res.State)
		fmt.Fprintf(&b, "- High Court: %s\n", res.HighCourt)
		fmt.Fprintf(&b, "- High Court Seat: %s\n", res.HighCourtSeat)
		fmt.Fprintf(&b, "- District Court: %s\n", res.DistrictCourt)
		if len(res.PlacesFound) > 0 {
			shown := make([]string, len(res.PlacesFound))
			for i, p := range res.PlacesFound {
				shown[i] = title.String(p)
			}
			fmt.Fprintf(&b, "- Places found: %s\n", strings.Join(shown, ", "))
		}
		b.WriteString("This jurisdiction data is verified against the official gazetteer. Do not second-guess or substitute it.\n")
	case ConfidenceInferred:
		b.WriteString("JURISDICTION (INFERRED FROM STATE):\n")
		fmt.Fprintf(&b, "- State: %s\n", res.State)
		fmt.Fprintf(&b, "- High Court: %s\n", res.HighCourt)
		fmt.Fprintf(&b, "- High Court Seat: %s\n", res.HighCourtSeat)
		b.WriteString("Only the state could be determined. The specific district should be clarified with the user before citing district-court details.\n")
	}

	if len(res.AllMatches) > 1 {
		b.WriteString("\nMULTIPLE LOCATIONS IDENTIFIED:\n")
		for i, m := range res.AllMatches {
			fmt.Fprintf(&b, "%d. %s -> %s, %s\n", i+1, title.String(m.Place), m.District, m.State)
		}
		b.WriteString("This brief may involve filings in more than one jurisdiction.\n")
	}

	return b.String()
}
