package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/workers"
	"github.com/comitanigiacomo/lifeboard/internal/telemetry"
)

type HabitService struct {
	repo    domain.HabitRepository
	logRepo domain.HabitLogRepository
	worker  *workers.StreakWorker
}

// NewHabitService wires the habit use cases. worker may be nil, in which
// case persisted streak columns are not refreshed.
func NewHabitService(repo domain.HabitRepository, logRepo domain.HabitLogRepository, worker *workers.StreakWorker) *HabitService {
	return &HabitService{
		repo:    repo,
		logRepo: logRepo,
		worker:  worker,
	}
}

type CreateHabitInput struct {
	Name          string
	Category      string
	Emoji         string
	TargetPerWeek int
}

type UpdateHabitInput struct {
	ID            string
	Name          string
	Category      string
	Emoji         *string
	TargetPerWeek int
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	habit, err := domain.NewHabit(input.Name, category, input.Emoji, input.TargetPerWeek)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("creating habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.repo.List(ctx)
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the non-empty input fields into the stored habit.
func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	category := habit.Category
	if input.Category != "" {
		if category, err = domain.ParseCategory(input.Category); err != nil {
			return nil, err
		}
	}

	emoji := ""
	if habit.Emoji != nil {
		emoji = *habit.Emoji
	}
	if input.Emoji != nil {
		emoji = *input.Emoji
	}

	target := habit.TargetPerWeek
	if input.TargetPerWeek != 0 {
		target = input.TargetPerWeek
	}

	if err := habit.Update(mergeString(input.Name, habit.Name), category, emoji, target); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("updating habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *HabitService) ListLogs(ctx context.Context, filter domain.HabitLogFilter) ([]*domain.HabitLog, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from is after to", domain.ErrInvalidDate)
	}
	return s.logRepo.List(ctx, filter)
}

// ToggleLog flips the completion of the habit on date. When no log exists
// one is created as completed. It returns the resulting log.
func (s *HabitService) ToggleLog(ctx context.Context, habitID string, date time.Time) (*domain.HabitLog, error) {
	if _, err := s.repo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}

	log, err := s.toggle(ctx, habitID, date)
	if errors.Is(err, domain.ErrHabitLogConflict) {
		// a concurrent toggle created the row first; flip that one instead
		log, err = s.toggle(ctx, habitID, date)
	}

	telemetry.RecordToggle(log != nil && log.Completed, err)
	if err != nil {
		return nil, err
	}

	s.worker.Enqueue(habitID)

	return log, nil
}

func (s *HabitService) toggle(ctx context.Context, habitID string, date time.Time) (*domain.HabitLog, error) {
	existing, err := s.logRepo.GetByHabitAndDate(ctx, habitID, domain.NormalizeDate(date))
	if errors.Is(err, domain.ErrHabitLogNotFound) {
		log := domain.NewHabitLog(habitID, date)
		if err := s.logRepo.Create(ctx, log); err != nil {
			return nil, fmt.Errorf("creating habit log: %w", err)
		}
		return log, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Toggle()
	if err := s.logRepo.SetCompleted(ctx, existing.ID, existing.Completed); err != nil {
		return nil, fmt.Errorf("updating habit log: %w", err)
	}
	return existing, nil
}
