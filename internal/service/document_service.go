package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studydesk/internal/metrics"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// fileTypes maps an allowed extension to its classification. Anything
// outside this table is rejected at upload time.
var fileTypes = map[string]string{
	".pdf":  "document",
	".doc":  "document",
	".docx": "document",
	".txt":  "document",
	".md":   "document",
	".rtf":  "document",
	".odt":  "document",
	".ppt":  "document",
	".pptx": "document",

	".png":  "image",
	".jpg":  "image",
	".jpeg": "image",
	".gif":  "image",
	".webp": "image",
	".svg":  "image",

	".mp3": "media",
	".wav": "media",
	".mp4": "media",
	".avi": "media",
	".mov": "media",
	".mkv": "media",

	".zip": "archive",
	".rar": "archive",
	".7z":  "archive",
	".tar": "archive",
	".gz":  "archive",

	".xls":  "spreadsheet",
	".xlsx": "spreadsheet",
	".csv":  "spreadsheet",
	".ods":  "spreadsheet",
}

// ClassifyFile maps a filename to its file type bucket. The second
// return is false when the extension is not allowed.
func ClassifyFile(filename string) (string, bool) {
	t, ok := fileTypes[strings.ToLower(filepath.Ext(filename))]
	return t, ok
}

// DocumentInput carries the mutable document fields.
type DocumentInput struct {
	OriginalFilename string
	Category         string
}

// DocumentStats summarizes a user's uploads.
type DocumentStats struct {
	TotalDocuments int64                    `json:"total_documents"`
	TotalSize      int64                    `json:"total_size"`
	ByType         map[string]TypeBreakdown `json:"by_type"`
	RecentUploads  int64                    `json:"recent_uploads"`
}

// TypeBreakdown is the per-file-type slice of the document stats.
type TypeBreakdown struct {
	Count     int64 `json:"count"`
	TotalSize int64 `json:"total_size"`
}

// DocumentService stores uploads on disk under a randomized name and
// tracks them in the database.
type DocumentService struct {
	docs      *repository.DocumentRepository
	uploadDir string
	maxSize   int64
}

func NewDocumentService(docs *repository.DocumentRepository, uploadDir string, maxSize int64) *DocumentService {
	return &DocumentService{docs: docs, uploadDir: uploadDir, maxSize: maxSize}
}

// Upload streams src to disk and records the document. The stored
// size is what actually landed on disk, not what the client claimed.
func (s *DocumentService) Upload(ctx context.Context, userID uint, src io.Reader, originalName, category string, now time.Time) (*model.Document, error) {
	fileType, ok := ClassifyFile(originalName)
	if !ok {
		return nil, ErrUnsupportedFile
	}
	if category == "" {
		category = "general"
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	stored := strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.uploadDir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > s.maxSize {
		err = ErrUploadTooLarge
	}
	if err != nil {
		os.Remove(path)
		if err == ErrUploadTooLarge {
			return nil, err
		}
		return nil, fmt.Errorf("store upload: %w", err)
	}

	doc := &model.Document{
		UserID:           userID,
		Filename:         stored,
		OriginalFilename: filepath.Base(originalName),
		FilePath:         path,
		FileType:         fileType,
		FileSize:         written,
		Category:         category,
		UploadedAt:       now,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		os.Remove(path)
		return nil, err
	}

	metrics.DocumentsUploaded.WithLabelValues(fileType).Inc()
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, userID uint, category, fileType string) ([]model.Document, error) {
	return s.docs.List(ctx, userID, category, fileType)
}

func (s *DocumentService) Get(ctx context.Context, userID, docID uint) (*model.Document, error) {
	return s.docs.FindByID(ctx, userID, docID)
}

func (s *DocumentService) Update(ctx context.Context, userID, docID uint, input DocumentInput) (*model.Document, error) {
	doc, err := s.docs.FindByID(ctx, userID, docID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.OriginalFilename) != "" {
		doc.OriginalFilename = filepath.Base(strings.TrimSpace(input.OriginalFilename))
	}
	if input.Category != "" {
		doc.Category = input.Category
	}
	if err := s.docs.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the row, then the disk file best-effort: a missing
// file never blocks the delete.
func (s *DocumentService) Delete(ctx context.Context, userID, docID uint) error {
	doc, err := s.docs.FindByID(ctx, userID, docID)
	if err != nil {
		return err
	}

	rows, err := s.docs.Delete(ctx, userID, docID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}

	os.Remove(doc.FilePath)
	return nil
}

func (s *DocumentService) Categories(ctx context.Context, userID uint) ([]string, error) {
	return s.docs.DistinctCategories(ctx, userID)
}

func (s *DocumentService) Stats(ctx context.Context, userID uint, now time.Time) (DocumentStats, error) {
	stats := DocumentStats{ByType: map[string]TypeBreakdown{}}

	var err error
	if stats.TotalDocuments, err = s.docs.CountForUser(ctx, userID); err != nil {
		return stats, err
	}
	if stats.TotalSize, err = s.docs.SumSize(ctx, userID); err != nil {
		return stats, err
	}
	if stats.RecentUploads, err = s.docs.CountUploadedSince(ctx, userID, now.AddDate(0, 0, -7)); err != nil {
		return stats, err
	}

	types, err := s.docs.TypeStats(ctx, userID)
	if err != nil {
		return stats, err
	}
	for _, t := range types {
		stats.ByType[t.FileType] = TypeBreakdown{Count: t.Count, TotalSize: t.TotalSize}
	}
	return stats, nil
}
