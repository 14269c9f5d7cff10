package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/repository"
)

var (
	// ErrInvalidClosureDate is returned when a closure date cannot be parsed.
	ErrInvalidClosureDate = errors.New("closure date must be MM/DD/YYYY or YYYY-MM-DD")
	// ErrClosureInPast is returned when a closure is added for a date before today.
	ErrClosureInPast = errors.New("closure date is in the past")
	// ErrDuplicateClosure is returned when the date is already closed.
	ErrDuplicateClosure = errors.New("store is already closed on that date")
)

var closureDateLayouts = []string{"01/02/2006", model.DateLayout}

// ClosureChecker answers whether the store takes pickups on a day.
type ClosureChecker interface {
	IsClosedOn(ctx context.Context, day time.Time) (bool, error)
}

// ClosureCalendar manages store closures.
type ClosureCalendar interface {
	ClosureChecker
	AddClosure(ctx context.Context, req ClosureRequest) (*model.ClosedDate, error)
	Upcoming(ctx context.Context) ([]model.ClosedDate, error)
}

// ClosureRequest describes a closure to add.
type ClosureRequest struct {
	Date      string
	Recurring bool
	Reason    string
	CreatedBy string
}

// CalendarOption configures a ClosureCalendarService.
type CalendarOption func(*ClosureCalendarService)

// WithClosureCache caches lookups per local date.
func WithClosureCache(capacity int, ttl time.Duration) CalendarOption {
	return func(s *ClosureCalendarService) {
		if capacity > 0 && ttl > 0 {
			s.cache = NewShardedCache[string, bool]("closures", capacity, ttl, 4)
		}
	}
}

// WithClock overrides the time source used to decide what "today" is.
func WithClock(now func() time.Time) CalendarOption {
	return func(s *ClosureCalendarService) {
		if now != nil {
			s.now = now
		}
	}
}

// ClosureCalendarService implements ClosureCalendar. Without a repository it
// only knows the standing closed weekday.
type ClosureCalendarService struct {
	repo          repository.ClosedDatesRepositoryInterface
	loc           *time.Location
	closedWeekday time.Weekday
	cache         *ShardedCache[string, bool]
	now           func() time.Time
}

// NewClosureCalendar creates a calendar for the store time zone.
func NewClosureCalendar(repo repository.ClosedDatesRepositoryInterface, loc *time.Location, closedWeekday time.Weekday, opts ...CalendarOption) *ClosureCalendarService {
	if loc == nil {
		loc = time.UTC
	}
	s := &ClosureCalendarService{
		repo:          repo,
		loc:           loc,
		closedWeekday: closedWeekday,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsClosedOn reports whether day's local calendar date is closed.
func (s *ClosureCalendarService) IsClosedOn(ctx context.Context, day time.Time) (bool, error) {
	local := day.In(s.loc)
	if local.Weekday() == s.closedWeekday {
		return true, nil
	}
	if s.repo == nil {
		return false, nil
	}

	key := local.Format(model.DateLayout)
	if s.cache != nil {
		if closed, ok := s.cache.Get(key); ok {
			return closed, nil
		}
	}

	closed, err := s.repo.ClosedOn(ctx, key, local.Weekday())
	if err != nil {
		return false, fmt.Errorf("closure lookup for %s: %w", key, err)
	}
	if s.cache != nil {
		s.cache.Set(key, closed)
	}
	return closed, nil
}

// AddClosure records a closure. The date is read in store time and must not
// be before today.
func (s *ClosureCalendarService) AddClosure(ctx context.Context, req ClosureRequest) (*model.ClosedDate, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	day, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if day.Before(s.today()) {
		return nil, ErrClosureInPast
	}

	doc := &repository.ClosedDateDocument{
		Date:      day.Format(model.DateLayout),
		Weekday:   int(day.Weekday()),
		Recurring: req.Recurring,
		Reason:    strings.TrimSpace(req.Reason),
		CreatedBy: req.CreatedBy,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateClosure
		}
		return nil, fmt.Errorf("add closure %s: %w", doc.Date, err)
	}

	if s.cache != nil {
		if req.Recurring {
			s.cache.Clear()
		} else {
			s.cache.Invalidate(doc.Date)
		}
	}

	log.Info().
		Str("date", doc.Date).
		Bool("recurring", doc.Recurring).
		Str("created_by", doc.CreatedBy).
		Msg("Store closure added")

	closure := closedDateFromDocument(*doc)
	return &closure, nil
}

// Upcoming lists closures from today onward, including every recurring closure.
func (s *ClosureCalendarService) Upcoming(ctx context.Context) ([]model.ClosedDate, error) {
	if s.repo == nil {
		return []model.ClosedDate{}, nil
	}

	docs, err := s.repo.ListUpcoming(ctx, s.today().Format(model.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("list closures: %w", err)
	}
	out := make([]model.ClosedDate, len(docs))
	for i, doc := range docs {
		out[i] = closedDateFromDocument(doc)
	}
	return out, nil
}

// Stop releases the lookup cache.
func (s *ClosureCalendarService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *ClosureCalendarService) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range closureDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, s.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidClosureDate
}

// today is local midnight of the current store date.
func (s *ClosureCalendarService) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func closedDateFromDocument(doc repository.ClosedDateDocument) model.ClosedDate {
	return model.ClosedDate{
		Date:      doc.Date,
		Weekday:   time.Weekday(doc.Weekday),
		Recurring: doc.Recurring,
		Reason:    doc.Reason,
		CreatedBy: doc.CreatedBy,
		CreatedAt: doc.CreatedAt,
	}
}

var _ ClosureCalendar = (*ClosureCalendarService)(nil)
