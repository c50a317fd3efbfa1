package repository

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/database"
	"github.com/aaANDkk/sutdychat/models"
)

// CoinRecordRepository implements the service.CoinRecordRepository interface.
// Records are append-only; there is no update or delete path.
type CoinRecordRepository struct {
	q queryable
}

// NewCoinRecordRepository creates a new coin record repository backed by the pool.
func NewCoinRecordRepository(db *database.DB) *CoinRecordRepository {
	return &CoinRecordRepository{q: db.Pool}
}

// newCoinRecordRepositoryWithTx creates a new coin record repository with a transaction.
func newCoinRecordRepositoryWithTx(tx queryable) *CoinRecordRepository {
	return &CoinRecordRepository{q: tx}
}

// Record appends a ledger entry and fills in its id and timestamp.
func (r *CoinRecordRepository) Record(ctx context.Context, record *models.CoinRecord) error {
	query := `
		INSERT INTO coin_records (user_id, amount, reason)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		record.AccountID,
		record.Amount,
		record.Reason,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record coin change for account %d: %w", record.AccountID, err)
	}

	return nil
}

// GetByAccount returns ledger entries for an account, newest first.
func (r *CoinRecordRepository) GetByAccount(ctx context.Context, accountID int64, limit int) ([]*models.CoinRecord, error) {
	query := `
		SELECT id, user_id, amount, reason, created_at
		FROM coin_records
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get coin records for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var records []*models.CoinRecord
	for rows.Next() {
		var record models.CoinRecord
		err := rows.Scan(
			&record.ID,
			&record.AccountID,
			&record.Amount,
			&record.Reason,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coin record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coin records: %w", err)
	}

	return records, nil
}

// SumByAccount returns the sum of all ledger entry amounts for an account.
// The account's denormalized balance must always equal this sum.
func (r *CoinRecordRepository) SumByAccount(ctx context.Context, accountID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM coin_records
		WHERE user_id = $1
	`

	var sum int64
	if err := r.q.QueryRow(ctx, query, accountID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum coin records for account %d: %w", accountID, err)
	}

	return sum, nil
}
