package documents

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentInput struct {
	CaseID      string `json:"case_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	StorageURL  string `json:"storage_url"`
	PageCount   int    `json:"page_count"`
}

func CreateDocumentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input documentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	caseID, err := uuid.Parse(input.CaseID)
	if err != nil {
		http.Error(w, "Invalid case_id", http.StatusBadRequest)
		return
	}
	if input.FileName == "" || input.StorageURL == "" {
		http.Error(w, "file_name and storage_url are required", http.StatusBadRequest)
		return
	}

	doc := Document{
		ID:          uuid.New(),
		CaseID:      caseID,
		UserID:      userID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		StorageURL:  input.StorageURL,
		PageCount:   input.PageCount,
	}

	if err := db.DB.Create(&doc).Error; err != nil {
		http.Error(w, "Failed to create document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(doc)
}

func ListDocumentsByCaseHandler(w http.ResponseWriter, r *http.Request) {
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

	var docs []Document
	if err := db.DB.Where("case_id = ? AND user_id = ?", caseID, userID).
		Order("created_at DESC").Find(&docs).Error; err != nil {
		http.Error(w, "Failed to fetch documents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(docs)
}

func fetchOwnedDocument(w http.ResponseWriter, r *http.Request) (*Document, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid document ID", http.StatusBadRequest)
		return nil, false
	}

	var doc Document
	err = db.DB.First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Document not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if doc.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, false
	}

	return &doc, true
}

func GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := fetchOwnedDocument(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := fetchOwnedDocument(w, r)
	if !ok {
		return
	}

	if err := db.DB.Delete(doc).Error; err != nil {
		http.Error(w, "Failed to delete document", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExtractTextHandler runs OCR against the stored file and persists the
// recognized text on the document row.
func ExtractTextHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := fetchOwnedDocument(w, r)
	if !ok {
		return
	}

	if OCR == nil {
		http.Error(w, "OCR is not configured", http.StatusServiceUnavailable)
		return
	}

	text, err := OCR.ExtractText(r.Context(), doc.StorageURL)
	if err != nil {
		log.Printf("[documents] OCR failed doc=%s err=%v", doc.ID, err)
		db.DB.Model(doc).Update("ocr_status", "failed")
		http.Error(w, "Text extraction failed", http.StatusBadGateway)
		return
	}

	doc.ExtractedText = text
	doc.OCRStatus = "done"
	if err := db.DB.Save(doc).Error; err != nil {
		http.Error(w, "Failed to save extracted text", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}
