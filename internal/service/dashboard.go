package service

import (
	"context"

	"renova-club/internal/constants"
	"renova-club/internal/domain"
	"renova-club/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	repo   *repository.AthleteRepository
	logger zerolog.Logger
}

func NewDashboardService(repo *repository.AthleteRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

// Counts returns the athlete count per bracket for the fixed seven labels.
// Missing brackets count zero. The seven queries are read-only and run in
// parallel.
func (s *DashboardService) Counts(ctx context.Context) (map[domain.Category]int, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	counts := make([]int, len(domain.Categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range domain.Categories {
		i, cat := i, cat
		g.Go(func() error {
			count, err := s.repo.CountByCategory(gctx, cat)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to count athletes by category")
		return nil, err
	}

	result := make(map[domain.Category]int, len(domain.Categories))
	for i, cat := range domain.Categories {
		result[cat] = counts[i]
	}
	return result, nil
}
