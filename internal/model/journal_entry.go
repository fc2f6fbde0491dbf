package model

import "time"

// JournalEntry is a free-form note. When IsEncrypted is set the
// content column holds the base64-obfuscated form (see the obfuscate
// package); API responses always carry the readable text.
type JournalEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"index"`
	Content     string    `json:"content"`
	Mood        string    `json:"mood"`
	IsEncrypted bool      `json:"is_encrypted" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}
