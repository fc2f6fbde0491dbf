package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// EventInput is a validated calendar event payload. Color fields left
// empty take the model defaults.
type EventInput struct {
	Title           string
	Description     string
	Start           time.Time
	End             *time.Time
	AllDay          bool
	BackgroundColor string
	BorderColor     string
	TextColor       string
	IsRecurring     bool
	RecurrenceType  string
	RecurrenceEnd   *time.Time
}

func (in EventInput) valid() bool {
	if strings.TrimSpace(in.Title) == "" || in.Start.IsZero() {
		return false
	}
	if in.IsRecurring {
		switch in.RecurrenceType {
		case "daily", "weekly", "monthly":
		default:
			return false
		}
	}
	return true
}

// CalendarService wraps calendar event business logic.
type CalendarService struct {
	events *repository.CalendarRepository
}

func NewCalendarService(events *repository.CalendarRepository) *CalendarService {
	return &CalendarService{events: events}
}

func (s *CalendarService) Create(ctx context.Context, userID uint, input EventInput) (*model.CalendarEvent, error) {
	event := eventFromInput(userID, input)
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// BulkCreate stores every valid entry and reports how many made it;
// invalid entries are skipped, not fatal.
func (s *CalendarService) BulkCreate(ctx context.Context, userID uint, inputs []EventInput) (int, error) {
	created := 0
	for _, input := range inputs {
		if !input.valid() {
			continue
		}
		if err := s.events.Create(ctx, eventFromInput(userID, input)); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *CalendarService) List(ctx context.Context, userID uint, from, to *time.Time) ([]model.CalendarEvent, error) {
	return s.events.List(ctx, userID, from, to)
}

func (s *CalendarService) Get(ctx context.Context, userID, eventID uint) (*model.CalendarEvent, error) {
	return s.events.FindByID(ctx, userID, eventID)
}

func (s *CalendarService) Update(ctx context.Context, userID, eventID uint, input EventInput) (*model.CalendarEvent, error) {
	event, err := s.events.FindByID(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartTime = input.Start
	event.EndTime = input.End
	event.AllDay = input.AllDay
	if input.BackgroundColor != "" {
		event.BackgroundColor = input.BackgroundColor
	}
	if input.BorderColor != "" {
		event.BorderColor = input.BorderColor
	}
	if input.TextColor != "" {
		event.TextColor = input.TextColor
	}
	event.IsRecurring = input.IsRecurring
	event.RecurrenceType = input.RecurrenceType
	event.RecurrenceEnd = input.RecurrenceEnd

	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *CalendarService) Delete(ctx context.Context, userID, eventID uint) error {
	rows, err := s.events.Delete(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CalendarService) Search(ctx context.Context, userID uint, query string) ([]model.CalendarEvent, error) {
	return s.events.Search(ctx, userID, strings.TrimSpace(query))
}

func eventFromInput(userID uint, input EventInput) *model.CalendarEvent {
	event := &model.CalendarEvent{
		UserID:          userID,
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		StartTime:       input.Start,
		EndTime:         input.End,
		AllDay:          input.AllDay,
		BackgroundColor: input.BackgroundColor,
		BorderColor:     input.BorderColor,
		TextColor:       input.TextColor,
		IsRecurring:     input.IsRecurring,
		RecurrenceType:  input.RecurrenceType,
		RecurrenceEnd:   input.RecurrenceEnd,
	}
	if event.BackgroundColor == "" {
		event.BackgroundColor = "#3b82f6"
	}
	if event.BorderColor == "" {
		event.BorderColor = "#1d4ed8"
	}
	if event.TextColor == "" {
		event.TextColor = "#ffffff"
	}
	return event
}
