package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/aaANDkk/sutdychat/database"
	"github.com/aaANDkk/sutdychat/models"
)

// InsertTestAccount inserts an account directly. A non-zero starting balance
// gets a matching ledger entry so the balance-equals-sum invariant holds
// from the start.
func InsertTestAccount(t *testing.T, db *database.DB, username string, coins int64) *models.Account {
	t.Helper()
	ctx := context.Background()

	var account models.Account
	err := db.WithTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO accounts (username, email, credential_hash, coins)
			VALUES ($1, $2, 'x', $3)
			RETURNING id, username, email, credential_hash, coins, created_at
		`, username, username+"@example.com", coins).Scan(
			&account.ID,
			&account.Username,
			&account.Email,
			&account.CredentialHash,
			&account.Coins,
			&account.CreatedAt,
		)
		if err != nil {
			return err
		}

		if coins != 0 {
			_, err = tx.Exec(ctx, `
				INSERT INTO coin_records (user_id, amount, reason)
				VALUES ($1, $2, 'test_grant')
			`, account.ID, coins)
		}
		return err
	})
	require.NoError(t, err)

	return &account
}

// InsertTestPrize inserts a prize directly.
func InsertTestPrize(t *testing.T, db *database.DB, name string, cost int64, available bool) *models.Prize {
	t.Helper()

	prize := &models.Prize{Name: name, Cost: cost, Available: available}
	err := db.QueryRow(context.Background(), `
		INSERT INTO prizes (name, description, cost, image_url, available)
		VALUES ($1, '', $2, '', $3)
		RETURNING id
	`, name, cost, available).Scan(&prize.ID)
	require.NoError(t, err)

	return prize
}

// InsertTestFriendLink inserts a directed friend link directly.
func InsertTestFriendLink(t *testing.T, db *database.DB, ownerID, friendID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO friends (user_id, friend_id) VALUES ($1, $2)
	`, ownerID, friendID)
	require.NoError(t, err)
}
