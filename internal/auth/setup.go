package auth

import (
	"log"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "lex_auth"); err != nil {
		log.Fatal("Failed to ensure schema lex_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}, &Session{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
