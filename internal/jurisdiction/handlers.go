package jurisdiction

import (
	"encoding/json"
	"net/http"
)

type resolveRequest struct {
	Text string `json:"text"`
}

type resolveResponse struct {
	Result *Result `json:"result"`
	Prompt string  `json:"prompt,omitempty"`
}

// ResolveHandler is thin glue over the library API: it resolves the posted
// text and returns both the structured result and the formatted prompt block.
func ResolveHandler(w http.ResponseWriter, r *http.Request) {
	var input resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := DefaultResolver.Resolve(input.Text)
	response := resolveResponse{
		Result: result,
		Prompt: DefaultResolver.FormatForPrompt(result),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
