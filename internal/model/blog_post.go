package model

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPost is a personal write-up, optionally shared publicly.
type BlogPost struct {
	ID        uint                        `json:"id" gorm:"primaryKey"`
	UserID    uint                        `json:"-" gorm:"index"`
	Title     string                      `json:"title"`
	Content   string                      `json:"content"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	IsPublic  bool                        `json:"is_public" gorm:"default:false"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}
