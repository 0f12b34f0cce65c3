package cases

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Case is one legal matter a user is working on. District, State and
// CourtName are stamped from the jurisdiction resolver when the brief text
// resolves; they stay empty otherwise.
type Case struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null" json:"user_id"`
	Title     string         `gorm:"not null" json:"title"`
	Summary   string         `json:"summary"`
	BriefText string         `gorm:"type:text" json:"brief_text"`
	CaseType  string         `json:"case_type"` // civil, criminal, family, property...
	Status    string         `gorm:"default:'draft'" json:"status"`
	CourtName string         `json:"court_name"`
	District  string         `json:"district"`
	State     string         `json:"state"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Case) TableName() string {
	return "cases.cases"
}
