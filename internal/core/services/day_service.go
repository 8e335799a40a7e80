package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

const DefaultRecentActivities = 5

type DayService struct {
	repo         domain.DayRepository
	activityRepo domain.ActivityRepository
}

func NewDayService(repo domain.DayRepository, activityRepo domain.ActivityRepository) *DayService {
	return &DayService{
		repo:         repo,
		activityRepo: activityRepo,
	}
}

type ActivityInput struct {
	Category    string
	Title       string
	Description string
	Completed   bool
}

type CreateDayInput struct {
	Date        time.Time
	EnergyLevel int
	Notes       string
	Activities  []ActivityInput
}

func buildActivity(dayID string, in ActivityInput) (*domain.Activity, error) {
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	return domain.NewActivity(dayID, category, in.Title, in.Description, in.Completed)
}

// Create stores the day and then its activities. All activities are
// validated before anything is written.
func (s *DayService) Create(ctx context.Context, input CreateDayInput) (*domain.Day, error) {
	day, err := domain.NewDay(input.Date, input.EnergyLevel, input.Notes)
	if err != nil {
		return nil, err
	}

	activities := make([]*domain.Activity, 0, len(input.Activities))
	for _, in := range input.Activities {
		a, err := buildActivity(day.ID, in)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	if err := s.repo.Create(ctx, day); err != nil {
		return nil, fmt.Errorf("creating day: %w", err)
	}

	for _, a := range activities {
		if err := s.activityRepo.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("creating activity %q: %w", a.Title, err)
		}
		day.Activities = append(day.Activities, *a)
	}

	return day, nil
}

func (s *DayService) GetByDate(ctx context.Context, date time.Time) (*domain.Day, error) {
	day, err := s.repo.GetByDate(ctx, domain.NormalizeDate(date))
	if err != nil {
		return nil, err
	}
	if err := s.attachActivities(ctx, []*domain.Day{day}); err != nil {
		return nil, err
	}
	return day, nil
}

// List returns every day, newest first, with its activities.
func (s *DayService) List(ctx context.Context) ([]*domain.Day, error) {
	days, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachActivities(ctx, days); err != nil {
		return nil, err
	}
	return days, nil
}

func (s *DayService) ListForMonth(ctx context.Context, month, year int) ([]*domain.Day, error) {
	from, to, err := domain.MonthBounds(month, year)
	if err != nil {
		return nil, err
	}
	return s.ListBetween(ctx, from, to)
}

func (s *DayService) AddActivity(ctx context.Context, date time.Time, input ActivityInput) (*domain.Activity, error) {
	day, err := s.repo.GetByDate(ctx, domain.NormalizeDate(date))
	if err != nil {
		return nil, err
	}

	a, err := buildActivity(day.ID, input)
	if err != nil {
		return nil, err
	}

	if err := s.activityRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}
	return a, nil
}

func (s *DayService) SetActivityCompleted(ctx context.Context, id string, completed bool) error {
	return s.activityRepo.SetCompleted(ctx, id, completed)
}

// RecentActivities returns the newest activities; limit <= 0 uses
// DefaultRecentActivities.
func (s *DayService) RecentActivities(ctx context.Context, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultRecentActivities
	}
	return s.activityRepo.ListRecent(ctx, limit)
}

func (s *DayService) attachActivities(ctx context.Context, days []*domain.Day) error {
	if len(days) == 0 {
		return nil
	}

	ids := make([]string, 0, len(days))
	byID := make(map[string]*domain.Day, len(days))
	for _, d := range days {
		ids = append(ids, d.ID)
		byID[d.ID] = d
		d.Activities = []domain.Activity{}
	}

	activities, err := s.activityRepo.ListByDayIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	for _, a := range activities {
		if d, ok := byID[a.DayID]; ok {
			d.Activities = append(d.Activities, *a)
		}
	}
	return nil
}

func (s *DayService) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Day, error) {
	days, err := s.repo.ListBetween(ctx, domain.NormalizeDate(from), domain.NormalizeDate(to))
	if err != nil {
		return nil, err
	}
	if err := s.attachActivities(ctx, days); err != nil {
		return nil, err
	}
	return days, nil
}
