package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

type WheelService struct {
	repo domain.WheelRepository
}

func NewWheelService(repo domain.WheelRepository) *WheelService {
	return &WheelService{repo: repo}
}

func (s *WheelService) Record(ctx context.Context, date time.Time, scores map[domain.Category]float64) (*domain.WheelOfLife, error) {
	wheel, err := domain.NewWheelOfLife(date, scores)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, wheel); err != nil {
		return nil, fmt.Errorf("recording wheel of life: %w", err)
	}
	return wheel, nil
}

// Latest returns the newest snapshot, or nil when none was ever recorded.
func (s *WheelService) Latest(ctx context.Context) (*domain.WheelOfLife, error) {
	return orNil(s.repo.Latest(ctx))
}

// ForMonth returns the newest snapshot dated within the month, or nil.
func (s *WheelService) ForMonth(ctx context.Context, month, year int) (*domain.WheelOfLife, error) {
	from, to, err := domain.MonthBounds(month, year)
	if err != nil {
		return nil, err
	}
	return orNil(s.repo.LatestBetween(ctx, from, to))
}

func orNil(w *domain.WheelOfLife, err error) (*domain.WheelOfLife, error) {
	if errors.Is(err, domain.ErrWheelNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}
