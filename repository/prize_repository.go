package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aaANDkk/sutdychat/database"
	"github.com/aaANDkk/sutdychat/models"
)

// PrizeRepository implements the service.PrizeRepository interface.
// Prizes are read-only here; the catalog is managed administratively.
type PrizeRepository struct {
	q queryable
}

// NewPrizeRepository creates a new prize repository backed by the pool.
func NewPrizeRepository(db *database.DB) *PrizeRepository {
	return &PrizeRepository{q: db.Pool}
}

// newPrizeRepositoryWithTx creates a new prize repository with a transaction.
func newPrizeRepositoryWithTx(tx queryable) *PrizeRepository {
	return &PrizeRepository{q: tx}
}

// GetAvailable returns all prizes with the availability flag set.
func (r *PrizeRepository) GetAvailable(ctx context.Context) ([]*models.Prize, error) {
	query := `
		SELECT id, name, description, cost, image_url, available
		FROM prizes
		WHERE available = TRUE
		ORDER BY cost ASC, id ASC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get available prizes: %w", err)
	}
	defer rows.Close()

	var prizes []*models.Prize
	for rows.Next() {
		var prize models.Prize
		err := rows.Scan(
			&prize.ID,
			&prize.Name,
			&prize.Description,
			&prize.Cost,
			&prize.ImageURL,
			&prize.Available,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prize: %w", err)
		}
		prizes = append(prizes, &prize)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prizes: %w", err)
	}

	return prizes, nil
}

// GetAvailableByID retrieves an available prize by id. Returns nil without
// error when the prize does not exist or is unavailable.
func (r *PrizeRepository) GetAvailableByID(ctx context.Context, id int64) (*models.Prize, error) {
	query := `
		SELECT id, name, description, cost, image_url, available
		FROM prizes
		WHERE id = $1 AND available = TRUE
	`

	var prize models.Prize
	err := r.q.QueryRow(ctx, query, id).Scan(
		&prize.ID,
		&prize.Name,
		&prize.Description,
		&prize.Cost,
		&prize.ImageURL,
		&prize.Available,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prize %d: %w", id, err)
	}

	return &prize, nil
}
