package analysis

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/jurisdiction"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analyzeRequest struct {
	CaseID string `json:"case_id"`
	Text   string `json:"text"`
}

// AnalyzeBriefHandler grounds the brief with the jurisdiction resolver,
// sends it to the LLM and persists the structured result. A failed
// jurisdiction resolution is not an error; the analysis proceeds without
// verified geography.
func AnalyzeBriefHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if LLM == nil {
		http.Error(w, "Brief analysis is not configured", http.StatusServiceUnavailable)
		return
	}

	var input analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.Text == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	var caseID uuid.UUID
	if input.CaseID != "" {
		parsed, err := uuid.Parse(input.CaseID)
		if err != nil {
			http.Error(w, "Invalid case_id", http.StatusBadRequest)
			return
		}
		caseID = parsed
	}

	enrich, _ := jurisdiction.DefaultResolver.Enrich(input.Text)
	prompt := BuildBriefPrompt(input.Text, enrich)

	raw, err := LLM.GenerateJSON(r.Context(), prompt)
	if err != nil {
		log.Printf("[analysis] LLM call failed user=%s err=%v", userID, err)
		http.Error(w, "Analysis service unavailable", http.StatusBadGateway)
		return
	}

	parsed, err := parseAnalysisResponse(raw)
	if err != nil {
		log.Printf("[analysis] unparseable LLM response user=%s err=%v", userID, err)
		http.Error(w, "Analysis service returned malformed output", http.StatusBadGateway)
		return
	}

	result := BriefAnalysis{
		ID:             uuid.New(),
		CaseID:         caseID,
		UserID:         userID,
		Summary:        parsed.Summary,
		KeyIssues:      parsed.KeyIssues,
		ApplicableLaws: parsed.ApplicableLaws,
		RawResponse:    raw,
		Model:          LLM.ModelName(),
	}
	if enrich != nil {
		result.District = enrich.Data.District
		result.State = enrich.Data.State
		result.HighCourt = enrich.Data.HighCourt
		result.Confidence = enrich.Data.Confidence
	}

	if err := db.DB.Create(&result).Error; err != nil {
		http.Error(w, "Failed to save analysis", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func GetAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	var result BriefAnalysis
	err = db.DB.First(&result, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if result.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func ListAnalysesByCaseHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	var results []BriefAnalysis
	if err := db.DB.Where("case_id = ? AND user_id = ?", caseID, userID).
		Order("created_at DESC").Find(&results).Error; err != nil {
		http.Error(w, "Failed to fetch analyses: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// TranscribeHandler converts uploaded dictation audio to text. Nothing is
// persisted; the client composes the text into a brief before analysis.
func TranscribeHandler(w http.ResponseWriter, r *http.Request) {
	if Speech == nil {
		http.Error(w, "Transcription is not configured", http.StatusServiceUnavailable)
		return
	}

	if err := r.ParseMultipartForm(25 << 20); err != nil { // 25 MiB
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "Missing audio file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	text, err := Speech.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("[analysis] transcription failed file=%s err=%v", header.Filename, err)
		http.Error(w, "Transcription failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"text": text})
}
