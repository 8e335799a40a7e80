package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

type GoalService struct {
	repo domain.GoalRepository
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) Create(ctx context.Context, input domain.GoalInput, year int) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input, year)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, year int) ([]*domain.Goal, error) {
	return s.repo.ListByYear(ctx, year)
}

func (s *GoalService) UpdateProgress(ctx context.Context, id string, current float64) (*domain.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := goal.SetProgress(current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type MonthlyGoalService struct {
	repo domain.MonthlyGoalRepository
}

func NewMonthlyGoalService(repo domain.MonthlyGoalRepository) *MonthlyGoalService {
	return &MonthlyGoalService{repo: repo}
}

type UpdateMonthlyGoalInput struct {
	ID           string
	CurrentValue *float64
	Status       *string
}

func (s *MonthlyGoalService) Create(ctx context.Context, input domain.GoalInput, month, year int) (*domain.MonthlyGoal, error) {
	goal, err := domain.NewMonthlyGoal(input, month, year)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("creating monthly goal: %w", err)
	}
	return goal, nil
}

func (s *MonthlyGoalService) List(ctx context.Context, month, year int) ([]*domain.MonthlyGoal, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	return s.repo.ListByMonth(ctx, month, year)
}

func (s *MonthlyGoalService) Update(ctx context.Context, input UpdateMonthlyGoalInput) (*domain.MonthlyGoal, error) {
	goal, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	var status *domain.GoalStatus
	if input.Status != nil {
		st, err := domain.ParseGoalStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		status = &st
	}

	if err := goal.Apply(input.CurrentValue, status); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("updating monthly goal: %w", err)
	}
	return goal, nil
}
