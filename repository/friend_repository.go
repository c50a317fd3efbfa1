package repository

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/database"
	"github.com/aaANDkk/sutdychat/models"
)

// FriendRepository implements the service.FriendRepository interface.
// Links are directed: (owner, friend) and (friend, owner) are distinct rows.
type FriendRepository struct {
	q queryable
}

// NewFriendRepository creates a new friend repository backed by the pool.
func NewFriendRepository(db *database.DB) *FriendRepository {
	return &FriendRepository{q: db.Pool}
}

// newFriendRepositoryWithTx creates a new friend repository with a transaction.
func newFriendRepositoryWithTx(tx queryable) *FriendRepository {
	return &FriendRepository{q: tx}
}

// Create inserts a directed link from owner to friend. The unique constraint
// on (user_id, friend_id) maps to models.ErrAlreadyLinked; a foreign key
// violation means the friend account does not exist.
func (r *FriendRepository) Create(ctx context.Context, ownerID, friendID int64) (*models.FriendLink, error) {
	query := `
		INSERT INTO friends (user_id, friend_id)
		VALUES ($1, $2)
		RETURNING id, user_id, friend_id, created_at
	`

	var link models.FriendLink
	err := r.q.QueryRow(ctx, query, ownerID, friendID).Scan(
		&link.ID,
		&link.OwnerID,
		&link.FriendID,
		&link.CreatedAt,
	)

	if isUniqueViolation(err) {
		return nil, models.ErrAlreadyLinked
	}
	if isForeignKeyViolation(err) {
		return nil, models.ErrUnknownAccount
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create friend link %d->%d: %w", ownerID, friendID, err)
	}

	return &link, nil
}

// Delete removes the directed link from owner to friend. Existing messages
// are unaffected; history is not revoked.
func (r *FriendRepository) Delete(ctx context.Context, ownerID, friendID int64) error {
	query := `
		DELETE FROM friends
		WHERE user_id = $1 AND friend_id = $2
	`

	result, err := r.q.Exec(ctx, query, ownerID, friendID)
	if err != nil {
		return fmt.Errorf("failed to delete friend link %d->%d: %w", ownerID, friendID, err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotLinked
	}

	return nil
}

// Exists reports whether a directed link from owner to friend exists.
func (r *FriendRepository) Exists(ctx context.Context, ownerID, friendID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM friends WHERE user_id = $1 AND friend_id = $2
		)
	`

	var exists bool
	if err := r.q.QueryRow(ctx, query, ownerID, friendID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check friend link %d->%d: %w", ownerID, friendID, err)
	}

	return exists, nil
}

// ListFriends returns all accounts the owner has linked to.
func (r *FriendRepository) ListFriends(ctx context.Context, ownerID int64) ([]*models.Account, error) {
	query := `
		SELECT a.id, a.username, a.email, a.credential_hash, a.coins, a.created_at
		FROM accounts a
		JOIN friends f ON a.id = f.friend_id
		WHERE f.user_id = $1
		ORDER BY f.created_at, f.id
	`

	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends for account %d: %w", ownerID, err)
	}
	defer rows.Close()

	var friends []*models.Account
	for rows.Next() {
		var account models.Account
		err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.Email,
			&account.CredentialHash,
			&account.Coins,
			&account.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return friends, nil
}
