package auth

import "time"

type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;unique" json:"-"`
	ExpiresAt time.Time `gorm:"not null"`
}

type User struct {
	UserID         string  `gorm:"primaryKey" json:"user_id"`
	Username       string  `gorm:"uniqueIndex" json:"username"`
	Email          string  `gorm:"uniqueIndex" json:"email"`
	Password       string  `json:"password" gorm:"-"`
	HashedPassword string  `json:"-"`
	Role           string  `gorm:"default:'lawyer'" json:"role"`
	Plan           string  `gorm:"default:'free'" json:"plan"`
	FirmName       string  `json:"firm_name"`
	Session        Session `gorm:"foreignKey:UserID" json:"session"`
}

func (Session) TableName() string { return "lex_auth.sessions" }
func (User) TableName() string    { return "lex_auth.users" }
