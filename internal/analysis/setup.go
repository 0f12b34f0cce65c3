package analysis

import (
	"log"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
)

// LLM is the process-wide brief analyzer; Speech the Whisper transcriber.
// Either may be nil when its API key is unset, in which case the matching
// endpoints return 503 but the rest of the backend works.
var (
	LLM    BriefAnalyzer
	Speech *Transcriber
)

func Init() {
	if err := db.EnsureSchema(db.DB, "analysis"); err != nil {
		log.Fatal("Failed to create analysis schema: ", err)
	}

	if err := db.DB.AutoMigrate(&BriefAnalysis{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	claude, err := NewClaudeClientFromEnv()
	if err != nil {
		log.Printf("[analysis] WARNING: %v; brief analysis disabled", err)
	} else {
		LLM = claude
		log.Printf("[analysis] brief analyzer ready model=%s", claude.ModelName())
	}

	Speech = NewTranscriberFromEnv()
	if Speech == nil {
		log.Printf("[analysis] OPENAI_API_KEY not set; transcription disabled")
	}
}
