package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
	"studydesk/internal/repository"
)

func newMoodService(t *testing.T) (*MoodService, *repository.MoodRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewMoodRepository(db)
	return NewMoodService(repo), repo
}

func TestRecordUpsertsSameDay(t *testing.T) {
	svc, repo := newMoodService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	first, updated, err := svc.Record(ctx, 1, MoodInput{Mood: "Happy"}, now)
	if err != nil {
		t.Fatalf("first Record: %v", err)
	}
	if updated {
		t.Error("first Record reported an update")
	}
	if first.MoodLevel != 9 {
		t.Errorf("default level for Happy = %d, want 9", first.MoodLevel)
	}

	second, updated, err := svc.Record(ctx, 1, MoodInput{Mood: "Sad", Notes: "long day"}, now.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("second Record: %v", err)
	}
	if !updated {
		t.Error("same-day Record did not report an update")
	}
	if second.ID != first.ID {
		t.Errorf("same-day Record created row %d, want overwrite of %d", second.ID, first.ID)
	}
	if second.Mood != "Sad" || second.MoodLevel != 3 {
		t.Errorf("overwritten entry = %q/%d, want Sad/3", second.Mood, second.MoodLevel)
	}

	n, err := repo.CountForUser(ctx, 1)
	if err != nil {
		t.Fatalf("CountForUser: %v", err)
	}
	if n != 1 {
		t.Errorf("rows after same-day records = %d, want 1", n)
	}

	// Next day gets its own row.
	if _, updated, err = svc.Record(ctx, 1, MoodInput{Mood: "Calm"}, now.AddDate(0, 0, 1)); err != nil || updated {
		t.Fatalf("next-day Record = updated %v, err %v", updated, err)
	}
	if n, _ = repo.CountForUser(ctx, 1); n != 2 {
		t.Errorf("rows after next-day record = %d, want 2", n)
	}
}

func TestRecordExplicitLevel(t *testing.T) {
	svc, _ := newMoodService(t)
	level := 5

	entry, _, err := svc.Record(context.Background(), 1, MoodInput{Mood: "Happy", Level: &level}, time.Now().UTC())
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if entry.MoodLevel != 5 {
		t.Errorf("level = %d, want explicit 5", entry.MoodLevel)
	}
}

func TestRecordUnknownMood(t *testing.T) {
	svc, _ := newMoodService(t)

	if _, _, err := svc.Record(context.Background(), 1, MoodInput{Mood: "Euphoric"}, time.Now().UTC()); err == nil {
		t.Error("unknown mood category accepted")
	}
}

func TestToday(t *testing.T) {
	svc, _ := newMoodService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if _, err := svc.Today(ctx, 1, now); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Today without entry = %v, want ErrRecordNotFound", err)
	}

	if _, _, err := svc.Record(ctx, 1, MoodInput{Mood: "Calm"}, now); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entry, err := svc.Today(ctx, 1, now.Add(10*time.Hour))
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if entry.Mood != "Calm" {
		t.Errorf("today's mood = %q, want Calm", entry.Mood)
	}

	// Another user's day stays empty.
	if _, err := svc.Today(ctx, 2, now); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Today for other user = %v, want ErrRecordNotFound", err)
	}
}

func TestMoodStreak(t *testing.T) {
	svc, repo := newMoodService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for _, daysAgo := range []int{0, 1, 5, 6, 7} {
		entry := model.MoodEntry{UserID: 1, Mood: "Happy", MoodLevel: 9, CreatedAt: now.AddDate(0, 0, -daysAgo)}
		if err := repo.Create(ctx, &entry); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	info, err := svc.Streak(ctx, 1, now)
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if info.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", info.CurrentStreak)
	}
	if info.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", info.LongestStreak)
	}
}

func TestMoodAnalyticsEmpty(t *testing.T) {
	svc, _ := newMoodService(t)

	report, err := svc.Analytics(context.Background(), 1, 30, time.Now().UTC())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if report.TotalEntries != 0 {
		t.Errorf("TotalEntries = %d, want 0", report.TotalEntries)
	}
	if report.MoodDistribution == nil || report.Insights == nil || report.MoodTrend == nil {
		t.Error("empty report has nil collections")
	}
}
