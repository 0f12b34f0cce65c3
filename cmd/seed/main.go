package main

import (
	"log"
	"os"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/auth"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/utils"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo lawyer account for local development.
func main() {
	godotenv.Load(".env.local")
	db.Connect()
	auth.Init()

	username := os.Getenv("SEED_USERNAME")
	if username == "" {
		username = "demo-lawyer"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	var existing auth.User
	err := db.DB.First(&existing, "username = ?", username).Error
	if err == nil {
		log.Printf("User %s already exists, skipping", username)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Hash error: %v", err)
	}

	user := auth.User{
		UserID:         utils.GenerateUUID(),
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: string(hashed),
		Role:           "lawyer",
		Plan:           "free",
		FirmName:       "Demo Chambers",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Seeded user %s (%s)", user.Username, user.UserID)
}
