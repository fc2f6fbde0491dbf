package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/analytics"
	"studydesk/internal/model"
	"studydesk/internal/obfuscate"
	"studydesk/internal/repository"
)

// JournalInput is a validated journal entry payload.
type JournalInput struct {
	Content     string
	Mood        string
	IsEncrypted bool
}

// JournalStats summarizes a user's journaling history.
type JournalStats struct {
	TotalEntries int64            `json:"total_entries"`
	ThisWeek     int64            `json:"entries_this_week"`
	ThisMonth    int64            `json:"entries_this_month"`
	MoodCounts   map[string]int64 `json:"mood_counts"`
}

// JournalService wraps journal business logic. Entries flagged
// IsEncrypted are stored base64-obfuscated and decoded on every read;
// callers always see readable text.
type JournalService struct {
	entries *repository.JournalRepository
}

func NewJournalService(entries *repository.JournalRepository) *JournalService {
	return &JournalService{entries: entries}
}

func (s *JournalService) Create(ctx context.Context, userID uint, input JournalInput) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{
		UserID:      userID,
		Content:     input.Content,
		Mood:        input.Mood,
		IsEncrypted: input.IsEncrypted,
	}
	if input.IsEncrypted {
		entry.Content = obfuscate.Encode(input.Content)
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return decoded(entry), nil
}

func (s *JournalService) List(ctx context.Context, userID uint, limit, offset int) ([]model.JournalEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := s.entries.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i] = *decoded(&entries[i])
	}
	return entries, nil
}

func (s *JournalService) Get(ctx context.Context, userID, entryID uint) (*model.JournalEntry, error) {
	entry, err := s.entries.FindByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	return decoded(entry), nil
}

func (s *JournalService) Update(ctx context.Context, userID, entryID uint, input JournalInput) (*model.JournalEntry, error) {
	entry, err := s.entries.FindByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Content = input.Content
	entry.Mood = input.Mood
	entry.IsEncrypted = input.IsEncrypted
	if input.IsEncrypted {
		entry.Content = obfuscate.Encode(input.Content)
	}
	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}
	return decoded(entry), nil
}

func (s *JournalService) Delete(ctx context.Context, userID, entryID uint) error {
	rows, err := s.entries.Delete(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search matches the stored content column, so obfuscated entries
// only match on their mood. That mirrors the storage format rather
// than working around it.
func (s *JournalService) Search(ctx context.Context, userID uint, query string) ([]model.JournalEntry, error) {
	entries, err := s.entries.Search(ctx, userID, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i] = *decoded(&entries[i])
	}
	return entries, nil
}

func (s *JournalService) Stats(ctx context.Context, userID uint, now time.Time) (JournalStats, error) {
	stats := JournalStats{MoodCounts: map[string]int64{}}

	var err error
	if stats.TotalEntries, err = s.entries.CountForUser(ctx, userID); err != nil {
		return stats, err
	}
	if stats.ThisWeek, err = s.entries.CountCreatedSince(ctx, userID, analytics.StartOfWeek(now)); err != nil {
		return stats, err
	}
	if stats.ThisMonth, err = s.entries.CountCreatedSince(ctx, userID, analytics.StartOfMonth(now)); err != nil {
		return stats, err
	}

	counts, err := s.entries.MoodCounts(ctx, userID)
	if err != nil {
		return stats, err
	}
	for _, c := range counts {
		stats.MoodCounts[c.Mood] = c.Count
	}
	return stats, nil
}

// decoded returns a copy of entry with readable content. When the
// stored value does not decode, the raw value is kept as-is.
func decoded(entry *model.JournalEntry) *model.JournalEntry {
	if !entry.IsEncrypted {
		return entry
	}
	out := *entry
	if plain, err := obfuscate.Decode(entry.Content); err == nil {
		out.Content = plain
	}
	return &out
}
