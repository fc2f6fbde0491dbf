package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
	"studydesk/internal/obfuscate"
	"studydesk/internal/repository"
)

func newJournalService(t *testing.T) (*JournalService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewJournalService(repository.NewJournalRepository(db)), db
}

func TestJournalObfuscationRoundTrip(t *testing.T) {
	svc, db := newJournalService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, 1, JournalInput{Content: "dear diary", IsEncrypted: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.Content != "dear diary" {
		t.Errorf("response content = %q, want plaintext", entry.Content)
	}

	// The stored column holds the encoded form.
	var row model.JournalEntry
	if err := db.First(&row, entry.ID).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Content == "dear diary" {
		t.Error("stored content is plaintext")
	}
	if plain, err := obfuscate.Decode(row.Content); err != nil || plain != "dear diary" {
		t.Errorf("stored content decodes to %q, %v", plain, err)
	}

	got, err := svc.Get(ctx, 1, entry.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "dear diary" {
		t.Errorf("Get content = %q, want plaintext", got.Content)
	}

	entries, err := svc.List(ctx, 1, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Content != "dear diary" {
		t.Errorf("List = %+v, want one plaintext entry", entries)
	}
}

func TestJournalPlainEntryUntouched(t *testing.T) {
	svc, db := newJournalService(t)

	entry, err := svc.Create(context.Background(), 1, JournalInput{Content: "plain note"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var row model.JournalEntry
	if err := db.First(&row, entry.ID).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Content != "plain note" {
		t.Errorf("stored content = %q, want untouched plaintext", row.Content)
	}
}

func TestJournalUpdateTogglesObfuscation(t *testing.T) {
	svc, db := newJournalService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, 1, JournalInput{Content: "open", IsEncrypted: false})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, 1, entry.ID, JournalInput{Content: "now hidden", IsEncrypted: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Content != "now hidden" {
		t.Errorf("response content = %q, want plaintext", updated.Content)
	}

	var row model.JournalEntry
	if err := db.First(&row, entry.ID).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if !row.IsEncrypted || row.Content == "now hidden" {
		t.Error("updated row not stored obfuscated")
	}
}

func TestJournalStats(t *testing.T) {
	svc, db := newJournalService(t)
	ctx := context.Background()
	// A Tuesday noon; Monday of that week is March 9th.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	rows := []model.JournalEntry{
		{UserID: 1, Content: "a", Mood: "Happy", CreatedAt: now},
		{UserID: 1, Content: "b", Mood: "Happy", CreatedAt: now.AddDate(0, 0, -1)},
		{UserID: 1, Content: "c", Mood: "Sad", CreatedAt: now.AddDate(0, 0, -8)},
		{UserID: 1, Content: "d", CreatedAt: now.AddDate(0, -2, 0)},
		{UserID: 2, Content: "foreign", CreatedAt: now},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed row: %v", err)
		}
	}

	stats, err := svc.Stats(ctx, 1, now)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalEntries != 4 {
		t.Errorf("total = %d, want 4", stats.TotalEntries)
	}
	if stats.ThisWeek != 2 {
		t.Errorf("this week = %d, want 2", stats.ThisWeek)
	}
	if stats.ThisMonth != 3 {
		t.Errorf("this month = %d, want 3", stats.ThisMonth)
	}
	if stats.MoodCounts["Happy"] != 2 || stats.MoodCounts["Sad"] != 1 {
		t.Errorf("mood counts = %v, want Happy:2 Sad:1", stats.MoodCounts)
	}
	if _, ok := stats.MoodCounts[""]; ok {
		t.Error("moodless entries counted in histogram")
	}
}
