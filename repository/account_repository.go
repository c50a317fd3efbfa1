package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aaANDkk/sutdychat/database"
	"github.com/aaANDkk/sutdychat/models"
)

// AccountRepository implements the service.AccountRepository interface.
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates a new account repository backed by the pool.
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// newAccountRepositoryWithTx creates a new account repository with a transaction.
func newAccountRepositoryWithTx(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

// GetByID retrieves an account by its id. Returns nil without error on a miss.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `
		SELECT id, username, email, credential_hash, coins, created_at
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	err := r.q.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.CredentialHash,
		&account.Coins,
		&account.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}

	return &account, nil
}

// GetByUsername retrieves an account by username. Returns nil without error on a miss.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT id, username, email, credential_hash, coins, created_at
		FROM accounts
		WHERE username = $1
	`

	var account models.Account
	err := r.q.QueryRow(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.CredentialHash,
		&account.Coins,
		&account.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by username %q: %w", username, err)
	}

	return &account, nil
}

// Create inserts a new account with a zero coin balance. The unique
// constraints on username and email are authoritative: a concurrent insert
// that slips past the service-level pre-check still surfaces as
// models.ErrDuplicateIdentity here.
func (r *AccountRepository) Create(ctx context.Context, username, email, credentialHash string) (*models.Account, error) {
	query := `
		INSERT INTO accounts (username, email, credential_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, credential_hash, coins, created_at
	`

	var account models.Account
	err := r.q.QueryRow(ctx, query, username, email, credentialHash).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.CredentialHash,
		&account.Coins,
		&account.CreatedAt,
	)

	if isUniqueViolation(err) {
		return nil, models.ErrDuplicateIdentity
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create account %q: %w", username, err)
	}

	return &account, nil
}

// AddCoins increases an account's balance atomically.
func (r *AccountRepository) AddCoins(ctx context.Context, id int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE accounts
		SET coins = coins + $1
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("failed to add coins for account %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrUnknownAccount
	}

	return nil
}

// DeductCoins decreases an account's balance atomically, failing with
// models.ErrInsufficientBalance when the balance does not cover the amount.
// The check and the mutation are a single conditional update so concurrent
// debits against the same account can never both pass the check.
func (r *AccountRepository) DeductCoins(ctx context.Context, id int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE accounts
		SET coins = coins - $1
		WHERE id = $2 AND coins >= $1
	`

	result, err := r.q.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("failed to deduct coins for account %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		// Distinguish a missing account from an underfunded one.
		account, err := r.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check account %d: %w", id, err)
		}
		if account == nil {
			return models.ErrUnknownAccount
		}
		return models.ErrInsufficientBalance
	}

	return nil
}
