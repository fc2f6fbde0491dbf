package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"studydesk/internal/repository"
)

func newDocumentService(t *testing.T) *DocumentService {
	t.Helper()
	db := newTestDB(t)
	return NewDocumentService(repository.NewDocumentRepository(db), t.TempDir(), 1<<20)
}

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		name     string
		wantType string
		wantOK   bool
	}{
		{"notes.pdf", "document", true},
		{"NOTES.PDF", "document", true},
		{"photo.jpeg", "image", true},
		{"song.mp3", "media", true},
		{"backup.tar", "archive", true},
		{"grades.csv", "spreadsheet", true},
		{"virus.exe", "", false},
		{"noextension", "", false},
	}
	for _, tt := range tests {
		gotType, ok := ClassifyFile(tt.name)
		if gotType != tt.wantType || ok != tt.wantOK {
			t.Errorf("ClassifyFile(%q) = %q, %v, want %q, %v", tt.name, gotType, ok, tt.wantType, tt.wantOK)
		}
	}
}

func TestUploadAndDelete(t *testing.T) {
	svc := newDocumentService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	doc, err := svc.Upload(ctx, 1, strings.NewReader("hello world"), "Notes.txt", "", now)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.FileSize != int64(len("hello world")) {
		t.Errorf("size = %d, want %d", doc.FileSize, len("hello world"))
	}
	if doc.FileType != "document" {
		t.Errorf("type = %q, want document", doc.FileType)
	}
	if doc.Category != "general" {
		t.Errorf("category = %q, want default general", doc.Category)
	}
	if doc.OriginalFilename != "Notes.txt" {
		t.Errorf("original filename = %q", doc.OriginalFilename)
	}
	if doc.Filename == "Notes.txt" || !strings.HasSuffix(doc.Filename, ".txt") {
		t.Errorf("stored name %q not randomized with extension kept", doc.Filename)
	}

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("stored bytes = %q", data)
	}

	if err := svc.Delete(ctx, 1, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(doc.FilePath); !os.IsNotExist(err) {
		t.Error("disk file survives delete")
	}
	if _, err := svc.Get(ctx, 1, doc.ID); err == nil {
		t.Error("row survives delete")
	}
}

func TestUploadRejectsUnknownType(t *testing.T) {
	svc := newDocumentService(t)

	_, err := svc.Upload(context.Background(), 1, strings.NewReader("x"), "tool.exe", "", time.Now().UTC())
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("Upload exe = %v, want ErrUnsupportedFile", err)
	}
}

func TestUploadTooLarge(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db), t.TempDir(), 4)

	_, err := svc.Upload(context.Background(), 1, strings.NewReader("way past the cap"), "big.txt", "", time.Now().UTC())
	if !errors.Is(err, ErrUploadTooLarge) {
		t.Errorf("Upload oversized = %v, want ErrUploadTooLarge", err)
	}
}

func TestDocumentStats(t *testing.T) {
	svc := newDocumentService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	uploads := []struct {
		name, body string
	}{
		{"a.txt", "aaaa"},
		{"b.pdf", "bb"},
		{"c.png", "ccc"},
	}
	for _, u := range uploads {
		if _, err := svc.Upload(ctx, 1, strings.NewReader(u.body), u.name, "school", now); err != nil {
			t.Fatalf("Upload %s: %v", u.name, err)
		}
	}

	stats, err := svc.Stats(ctx, 1, now)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalDocuments != 3 {
		t.Errorf("total = %d, want 3", stats.TotalDocuments)
	}
	if stats.TotalSize != 9 {
		t.Errorf("total size = %d, want 9", stats.TotalSize)
	}
	if stats.ByType["document"].Count != 2 || stats.ByType["document"].TotalSize != 6 {
		t.Errorf("document bucket = %+v, want count 2 size 6", stats.ByType["document"])
	}
	if stats.ByType["image"].Count != 1 {
		t.Errorf("image bucket = %+v, want count 1", stats.ByType["image"])
	}
	if stats.RecentUploads != 3 {
		t.Errorf("recent uploads = %d, want 3", stats.RecentUploads)
	}

	categories, err := svc.Categories(ctx, 1)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 1 || categories[0] != "school" {
		t.Errorf("categories = %v, want [school]", categories)
	}
}
