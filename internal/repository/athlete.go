package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"renova-club/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

type AthleteRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

func NewAthleteRepository(db *sqlx.DB, logger zerolog.Logger) *AthleteRepository {
	return &AthleteRepository{db: db, logger: logger}
}

func (r *AthleteRepository) Create(ctx context.Context, athlete *domain.Athlete) (int64, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO atletas (
			nome, nascimento, altura, endereco, telefone,
			responsavel, telefone_responsavel, escola, clube,
			padrao_treino, padrao_jogo, camisa, numero, sub
		) VALUES (
			:nome, :nascimento, :altura, :endereco, :telefone,
			:responsavel, :telefone_responsavel, :escola, :clube,
			:padrao_treino, :padrao_jogo, :camisa, :numero, :sub
		)`, athlete)
	if err != nil {
		return 0, fmt.Errorf("failed to insert athlete: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted athlete id: %w", err)
	}

	r.logger.Debug().Int64("id", id).Str("category", string(athlete.Category)).Msg("athlete created")
	return id, nil
}

// Update overwrites every mutable column of the row matching id. An unknown
// id matches zero rows and is not an error.
func (r *AthleteRepository) Update(ctx context.Context, athlete *domain.Athlete) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE atletas SET
			nome=:nome, nascimento=:nascimento, altura=:altura,
			endereco=:endereco, telefone=:telefone,
			responsavel=:responsavel, telefone_responsavel=:telefone_responsavel,
			escola=:escola, clube=:clube,
			padrao_treino=:padrao_treino, padrao_jogo=:padrao_jogo,
			camisa=:camisa, numero=:numero, sub=:sub
		WHERE id=:id`, athlete)
	if err != nil {
		return fmt.Errorf("failed to update athlete %d: %w", athlete.ID, err)
	}
	return nil
}

func (r *AthleteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM atletas WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete athlete %d: %w", id, err)
	}
	return nil
}

func (r *AthleteRepository) Get(ctx context.Context, id int64) (*domain.Athlete, error) {
	var athlete domain.Athlete
	err := r.db.GetContext(ctx, &athlete, "SELECT * FROM atletas WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAthleteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get athlete %d: %w", id, err)
	}
	return &athlete, nil
}

// List returns every athlete ordered by category label, then name. The
// category sorts as plain text, so "Adulto" comes before "Sub13"; the
// listing screen has always shown it that way.
func (r *AthleteRepository) List(ctx context.Context) ([]domain.Athlete, error) {
	var athletes []domain.Athlete
	err := r.db.SelectContext(ctx, &athletes, "SELECT * FROM atletas ORDER BY sub, nome")
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}

func (r *AthleteRepository) CountByCategory(ctx context.Context, category domain.Category) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM atletas WHERE sub = ?", category)
	if err != nil {
		return 0, fmt.Errorf("failed to count athletes in %s: %w", category, err)
	}
	return count, nil
}
