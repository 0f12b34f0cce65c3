package jurisdiction

// Context keys used when an enrichment is merged into a prompt-assembly
// context map.
const (
	ContextKeyData   = "jurisdiction_data"
	ContextKeyPrompt = "jurisdiction_prompt"
)

// Enrichment bundles a resolved jurisdiction with its prompt block. It is
// returned as an explicit value so callers decide how to combine it with
// their own prompt context instead of having a map mutated behind their back.
type Enrichment struct {
	Data   *Result `json:"jurisdiction_data"`
	Prompt string  `json:"jurisdiction_prompt"`
}

// Enrich resolves text and, when something usable was found, returns the
// enrichment. Best effort: unresolved or empty text yields (nil, false),
// never an error.
func (r *Resolver) Enrich(text string) (*Enrichment, bool) {
	res := r.Resolve(text)
	if !res.Resolved {
		return nil, false
	}
	return &Enrichment{Data: res, Prompt: r.FormatForPrompt(res)}, true
}

// MergeInto writes the enrichment into a caller-supplied context map under
// the fixed keys. Additive and idempotent; a nil map is left untouched.
// Serializing concurrent merges into the same map is the caller's job.
func (e *Enrichment) MergeInto(ctx map[string]any) {
	if e == nil || ctx == nil {
		return
	}
	ctx[ContextKeyData] = e.Data
	ctx[ContextKeyPrompt] = e.Prompt
}
