package cases

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/jurisdiction"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type caseInput struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	BriefText string   `json:"brief_text"`
	CaseType  string   `json:"case_type"`
	Status    string   `json:"status"`
	Tags      []string `json:"tags"`
}

// stampJurisdiction best-effort fills court routing fields from the brief
// text. Resolution failure is a normal outcome, never an error.
func stampJurisdiction(c *Case) {
	if c.BriefText == "" {
		return
	}
	result := jurisdiction.DefaultResolver.Resolve(c.BriefText)
	if !result.Resolved || result.Confidence != jurisdiction.ConfidenceVerified {
		return
	}
	c.District = result.District
	c.State = result.State
	c.CourtName = result.DistrictCourt
}

func CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input caseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	newCase := Case{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Summary:   input.Summary,
		BriefText: input.BriefText,
		CaseType:  input.CaseType,
		Tags:      input.Tags,
	}
	if input.Status != "" {
		newCase.Status = input.Status
	}
	stampJurisdiction(&newCase)

	if err := db.DB.Create(&newCase).Error; err != nil {
		http.Error(w, "Failed to create case", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newCase)
}

func ListCasesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	query := db.DB.Where("user_id = ?", userID)

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if caseType := r.URL.Query().Get("case_type"); caseType != "" {
		query = query.Where("case_type = ?", caseType)
	}

	var userCases []Case
	if err := query.Order("updated_at DESC").Find(&userCases).Error; err != nil {
		http.Error(w, "Failed to fetch cases: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(userCases)
}

// fetchOwnedCase loads a case by path ID and checks it belongs to the caller.
func fetchOwnedCase(w http.ResponseWriter, r *http.Request) (*Case, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return nil, false
	}

	var c Case
	err = db.DB.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Case not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if c.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, false
	}

	return &c, true
}

func GetCaseHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := fetchOwnedCase(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func UpdateCaseHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := fetchOwnedCase(w, r)
	if !ok {
		return
	}

	var input caseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if input.Title != "" {
		c.Title = input.Title
	}
	if input.Summary != "" {
		c.Summary = input.Summary
	}
	if input.CaseType != "" {
		c.CaseType = input.CaseType
	}
	if input.Status != "" {
		c.Status = input.Status
	}
	if input.Tags != nil {
		c.Tags = input.Tags
	}
	if input.BriefText != "" && input.BriefText != c.BriefText {
		c.BriefText = input.BriefText
		stampJurisdiction(c)
	}

	if err := db.DB.Save(c).Error; err != nil {
		http.Error(w, "Failed to update case", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func DeleteCaseHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := fetchOwnedCase(w, r)
	if !ok {
		return
	}

	if err := db.DB.Delete(c).Error; err != nil {
		http.Error(w, "Failed to delete case", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
