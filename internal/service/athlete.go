package service

import (
	"context"
	"time"

	"renova-club/internal/category"
	"renova-club/internal/constants"
	"renova-club/internal/domain"
	"renova-club/internal/repository"

	"github.com/rs/zerolog"
)

// AthleteForm carries the flat string fields submitted by the registration
// and edit forms. The category is never part of the form; it is derived
// from the birth date on every write.
type AthleteForm struct {
	Name          string
	BirthDate     string
	Height        string
	Address       string
	Phone         string
	GuardianName  string
	GuardianPhone string
	School        string
	Club          string
	TrainingKit   string
	GameKit       string
	ShirtColor    string
	ShirtNumber   string
}

type AthleteService struct {
	repo   *repository.AthleteRepository
	logger zerolog.Logger
}

func NewAthleteService(repo *repository.AthleteRepository, logger zerolog.Logger) *AthleteService {
	return &AthleteService{repo: repo, logger: logger}
}

func (s *AthleteService) Register(ctx context.Context, form AthleteForm) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	cat, err := category.Classify(form.BirthDate, time.Now())
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, athleteFromForm(0, form, cat))
	if err != nil {
		s.logger.Error().Err(err).Str("name", form.Name).Msg("failed to register athlete")
		return 0, err
	}

	s.logger.Info().Int64("id", id).Str("category", string(cat)).Msg("athlete registered")
	return id, nil
}

// Edit overwrites the stored athlete. The category is always recomputed
// from the submitted birth date, never carried over from the old row.
func (s *AthleteService) Edit(ctx context.Context, id int64, form AthleteForm) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	cat, err := category.Classify(form.BirthDate, time.Now())
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, athleteFromForm(id, form, cat)); err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("failed to update athlete")
		return err
	}

	s.logger.Info().Int64("id", id).Str("category", string(cat)).Msg("athlete updated")
	return nil
}

func (s *AthleteService) Remove(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("failed to remove athlete")
		return err
	}

	s.logger.Info().Int64("id", id).Msg("athlete removed")
	return nil
}

func (s *AthleteService) Get(ctx context.Context, id int64) (*domain.Athlete, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}

func (s *AthleteService) List(ctx context.Context) ([]domain.Athlete, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.List(ctx)
}

func athleteFromForm(id int64, form AthleteForm, cat domain.Category) *domain.Athlete {
	return &domain.Athlete{
		ID:            id,
		Name:          form.Name,
		BirthDate:     form.BirthDate,
		Height:        form.Height,
		Address:       form.Address,
		Phone:         form.Phone,
		GuardianName:  form.GuardianName,
		GuardianPhone: form.GuardianPhone,
		School:        form.School,
		Club:          form.Club,
		TrainingKit:   form.TrainingKit,
		GameKit:       form.GameKit,
		ShirtColor:    form.ShirtColor,
		ShirtNumber:   form.ShirtNumber,
		Category:      cat,
	}
}
