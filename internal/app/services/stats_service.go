package services

import (
	"context"

	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/repositories"
)

// StatsService exposes dashboard aggregates
type StatsService struct {
	statsRepo *repositories.StatsRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(statsRepo *repositories.StatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

// Overview returns entity totals, per-college student counts and the gender
// breakdown
func (s *StatsService) Overview(ctx context.Context) (*dto.StatsOverview, error) {
	return s.statsRepo.Overview(ctx)
}
