package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BriefAnalysis is one persisted LLM analysis of a brief, together with the
// jurisdiction grounding that was fed into the prompt.
type BriefAnalysis struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CaseID         uuid.UUID      `gorm:"type:uuid;index" json:"case_id"`
	UserID         string         `gorm:"index;not null" json:"user_id"`
	Summary        string         `gorm:"type:text" json:"summary"`
	KeyIssues      pq.StringArray `gorm:"type:text[]" json:"key_issues"`
	ApplicableLaws pq.StringArray `gorm:"type:text[]" json:"applicable_laws"`
	District       string         `json:"district"`
	State          string         `json:"state"`
	HighCourt      string         `json:"high_court"`
	Confidence     string         `json:"confidence"`
	RawResponse    string         `gorm:"type:text" json:"-"`
	Model          string         `json:"model"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (BriefAnalysis) TableName() string {
	return "analysis.brief_analyses"
}
