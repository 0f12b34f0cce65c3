package cases

import (
	"log"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "cases"); err != nil {
		log.Fatal("Failed to create cases schema: ", err)
	}

	if err := db.DB.AutoMigrate(&Case{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
