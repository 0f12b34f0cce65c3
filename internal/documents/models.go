package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document is metadata for a file stored in Supabase storage; the binary
// itself never passes through this backend except during OCR extraction.
type Document struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CaseID        uuid.UUID `gorm:"type:uuid;index;not null" json:"case_id"`
	UserID        string    `gorm:"index;not null" json:"user_id"`
	FileName      string    `gorm:"not null" json:"file_name"`
	ContentType   string    `json:"content_type"`
	StorageURL    string    `json:"storage_url"`
	ExtractedText string    `gorm:"type:text" json:"extracted_text"`
	OCRStatus     string    `gorm:"default:'pending'" json:"ocr_status"` // pending, done, failed
	PageCount     int       `json:"page_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents.documents"
}
