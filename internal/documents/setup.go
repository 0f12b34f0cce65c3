package documents

import (
	"log"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
)

// OCR is the process-wide OCR client. Nil when HF_API_TOKEN is unset, in
// which case extraction endpoints return 503 but everything else works.
var OCR *OCRClient

func Init() {
	if err := db.EnsureSchema(db.DB, "documents"); err != nil {
		log.Fatal("Failed to create documents schema: ", err)
	}

	if err := db.DB.AutoMigrate(&Document{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	var err error
	OCR, err = NewOCRClient()
	if err != nil {
		log.Printf("[documents] WARNING: Failed to initialize OCR client: %v", err)
		OCR = nil
	} else if OCR == nil {
		log.Printf("[documents] HF_API_TOKEN not set; OCR extraction disabled")
	}
}
