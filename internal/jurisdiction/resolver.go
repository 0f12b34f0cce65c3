package jurisdiction

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/gazetteer"
)

// Confidence tiers reported to downstream consumers.
const (
	ConfidenceVerified = "verified" // district-level match against the gazetteer
	ConfidenceInferred = "inferred" // state name mentioned, district unknown
)

// Match maps one matched surface token to its resolved district.
type Match struct {
	Place    string `json:"matched_place"`
	District string `json:"district"`
	State    string `json:"state"`
}

// Result is the outcome of resolving free text against the gazetteer.
// AllMatches is populated only when more than one distinct district matched,
// which signals a potential multi-jurisdiction filing. StateMentions lists
// every literal state-name mention regardless of district resolution.
type Result struct {
	Resolved      bool     `json:"resolved"`
	Confidence    string   `json:"confidence,omitempty"`
	PlacesFound   []string `json:"places_found,omitempty"`
	District      string   `json:"district,omitempty"`
	State         string   `json:"state,omitempty"`
	HighCourt     string   `json:"high_court,omitempty"`
	HighCourtSeat string   `json:"hc_seat,omitempty"`
	DistrictCourt string   `json:"district_court,omitempty"`
	AllMatches    []Match  `json:"all_matches,omitempty"`
	StateMentions []string `json:"state_mentions,omitempty"`
	Note          string   `json:"note,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// Resolver scans legal-brief text for Indian place references and returns the
// verified court hierarchy for the best match. All lookup structures are
// finalized in NewResolver and never mutated afterwards, so a single Resolver
// is safe to share across concurrent callers.
type Resolver struct {
	store        *gazetteer.Store
	lookup       map[string]string // lower-cased token -> lower-cased district key
	pattern      *regexp.Regexp
	statePattern *regexp.Regexp
	states       map[string]gazetteer.StateInfo // lower-cased state name -> info
}

// NewResolver builds the composite lookup table and the scan patterns from
// the gazetteer. This is the only place escaping/compilation cost is paid;
// Resolve is then a single linear pass over the input.
func NewResolver(store *gazetteer.Store) (*Resolver, error) {
	districts := make(map[string]string, len(store.Districts()))
	for key := range store.Districts() {
		districts[key] = key
	}
	lookup := buildLookup(districts, store.TalukAliases(), store.PlaceAliases())

	tokens := make([]string, 0, len(lookup))
	for tok := range lookup {
		tokens = append(tokens, tok)
	}
	pattern, err := compileAlternation(tokens)
	if err != nil {
		return nil, fmt.Errorf("compile place pattern: %w", err)
	}

	states := store.States()
	stateNames := make([]string, 0, len(states))
	for name := range states {
		stateNames = append(stateNames, name)
	}
	statePattern, err := compileAlternation(stateNames)
	if err != nil {
		return nil, fmt.Errorf("compile state pattern: %w", err)
	}

	return &Resolver{
		store:        store,
		lookup:       lookup,
		pattern:      pattern,
		statePattern: statePattern,
		states:       states,
	}, nil
}

// buildLookup flattens the three token sources into one alias -> district
// table. The merge order is a deliberate precedence rule, not an iteration
// accident: district self-references first, then taluk aliases, then place
// aliases, each later pass overwriting collisions. The most common everyday
// reference for a name therefore wins.
func buildLookup(districts, taluks, places map[string]string) map[string]string {
	lookup := make(map[string]string, len(districts)+len(taluks)+len(places))
	for tok, key := range districts {
		lookup[tok] = key
	}
	for tok, key := range taluks {
		lookup[tok] = key
	}
	for tok, key := range places {
		lookup[tok] = key
	}
	return lookup
}

// compileAlternation builds one case-insensitive word-boundary alternation
// over all escaped tokens, longest token first. Longest-first ordering makes
// the scanner prefer "north paravur" over "paravur" when both start at the
// same offset; word boundaries keep "Goa" from matching inside "Goan".
func compileAlternation(tokens []string) (*regexp.Regexp, error) {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	escaped := make([]string, len(sorted))
	for i, tok := range sorted {
		escaped[i] = regexp.QuoteMeta(tok)
	}
	return regexp.Compile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// Resolve scans text for known place/taluk/district names and literal state
// mentions and applies the resolution policy: district match wins with
// "verified" confidence, a bare state mention degrades to "inferred", and
// anything else is an unresolved (non-error) outcome. It never panics and
// never returns an error value; the only error condition is empty input.
func (r *Resolver) Resolve(text string) *Result {
	if strings.TrimSpace(text) == "" {
		return &Result{Resolved: false, Error: "Empty text"}
	}

	lower := strings.ToLower(text)

	var places []string
	var matches []Match
	seenToken := make(map[string]bool)
	seenDistrict := make(map[string]bool)
	for _, tok := range r.pattern.FindAllString(lower, -1) {
		key, ok := r.lookup[tok]
		if !ok {
			continue
		}
		if !seenToken[tok] {
			seenToken[tok] = true
			places = append(places, tok)
		}
		// A district is reported once even when several of its aliases
		// appear; the first occurrence fixes the match order.
		if seenDistrict[key] {
			continue
		}
		seenDistrict[key] = true
		d, ok := r.store.District(key)
		if !ok {
			continue
		}
		matches = append(matches, Match{Place: tok, District: d.Name, State: d.State})
	}

	// Independent, non-deduplicated scan for literal state mentions.
	var stateMentions []string
	for _, tok := range r.statePattern.FindAllString(lower, -1) {
		if info, ok := r.states[tok]; ok {
			stateMentions = append(stateMentions, info.Name)
		}
	}

	if len(matches) > 0 {
		primary, _ := r.store.District(strings.ToLower(matches[0].District))
		res := &Result{
			Resolved:      true,
			Confidence:    ConfidenceVerified,
			PlacesFound:   places,
			District:      primary.Name,
			State:         primary.State,
			HighCourt:     primary.HighCourt,
			HighCourtSeat: primary.HighCourtSeat,
			DistrictCourt: primary.DistrictCourt,
			StateMentions: stateMentions,
		}
		if len(matches) > 1 {
			res.AllMatches = matches
		}
		return res
	}

	if len(stateMentions) > 0 {
		info, _ := r.store.State(stateMentions[0])
		return &Result{
			Resolved:      true,
			Confidence:    ConfidenceInferred,
			State:         info.Name,
			HighCourt:     info.HighCourt,
			HighCourtSeat: info.HighCourtSeat,
			StateMentions: stateMentions,
			Note:          "State identified from text; the specific district could not be determined.",
		}
	}

	return &Result{Resolved: false}
}
