package service

import (
	"context"
	"time"

	"renova-club/internal/constants"
	"renova-club/internal/domain"
	"renova-club/internal/repository"

	"github.com/rs/zerolog"
)

// CompetitionForm carries the flat string fields of the competition
// registration form. Categories stays free text; nothing ties it to the
// seven athlete brackets.
type CompetitionForm struct {
	Name       string
	Date       string
	Categories string
	Location   string
}

type CompetitionService struct {
	repo   *repository.CompetitionRepository
	logger zerolog.Logger
}

func NewCompetitionService(repo *repository.CompetitionRepository, logger zerolog.Logger) *CompetitionService {
	return &CompetitionService{repo: repo, logger: logger}
}

func (s *CompetitionService) Register(ctx context.Context, form CompetitionForm) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, &domain.Competition{
		Name:       form.Name,
		Date:       form.Date,
		Categories: form.Categories,
		Location:   form.Location,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", form.Name).Msg("failed to register competition")
		return 0, err
	}

	s.logger.Info().Int64("id", id).Str("date", form.Date).Msg("competition registered")
	return id, nil
}

func (s *CompetitionService) List(ctx context.Context) ([]domain.Competition, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.List(ctx, time.Now())
}
