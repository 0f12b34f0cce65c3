package utils

import (
	"time"

	"github.com/google/uuid"
)

type SessionData struct {
	UserID    string
	ExpiresAt time.Time
}

func GenerateUUID() string {
	return uuid.NewString()
}
