package repository

import (
	"context"
	"fmt"
	"time"

	"renova-club/internal/category"
	"renova-club/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

type CompetitionRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

func NewCompetitionRepository(db *sqlx.DB, logger zerolog.Logger) *CompetitionRepository {
	return &CompetitionRepository{db: db, logger: logger}
}

func (r *CompetitionRepository) Create(ctx context.Context, competition *domain.Competition) (int64, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO competicoes (nome, data, subs, local)
		VALUES (:nome, :data, :subs, :local)`, competition)
	if err != nil {
		return 0, fmt.Errorf("failed to insert competition: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted competition id: %w", err)
	}

	r.logger.Debug().Int64("id", id).Str("date", competition.Date).Msg("competition created")
	return id, nil
}

// List returns every competition ordered by how close its date is to now,
// nearest first. The distance is whole days since both sides are date-only;
// ties keep the table's natural retrieval order.
func (r *CompetitionRepository) List(ctx context.Context, now time.Time) ([]domain.Competition, error) {
	var competitions []domain.Competition
	err := r.db.SelectContext(ctx, &competitions, `
		SELECT * FROM competicoes
		ORDER BY ABS(julianday(data) - julianday(?))`,
		now.Format(category.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}
