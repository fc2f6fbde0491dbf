package model

import "time"

// Document is an uploaded file. Filename is the randomized name on
// disk, OriginalFilename what the user uploaded, FilePath the
// server-local location (never serialized).
type Document struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"-" gorm:"index"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FilePath         string    `json:"-"`
	FileType         string    `json:"file_type"` // document, image, media, archive, spreadsheet or other
	FileSize         int64     `json:"file_size"`
	Category         string    `json:"category" gorm:"default:general"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
