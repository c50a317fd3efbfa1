package models

import (
	"time"
)

// Account represents a registered user with a coin balance.
// Coins are never mutated directly; every change goes through the ledger.
type Account struct {
	ID             int64     `db:"id"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	CredentialHash string    `db:"credential_hash"`
	Coins          int64     `db:"coins"`
	CreatedAt      time.Time `db:"created_at"`
}
