package models

import (
	"time"
)

// Ledger reasons for coin changes. The amount credited per message is a
// policy constant, not content-dependent.
const (
	ReasonMessageSent  = "message_sent"
	ReasonRedeemPrefix = "redeem:"
)

// CoinRecord is an immutable, append-only ledger entry. An account's
// balance always equals the sum of its record amounts; the denormalized
// accounts.coins column is updated in the same transaction as the append.
type CoinRecord struct {
	ID        int64     `db:"id"`
	AccountID int64     `db:"user_id"`
	Amount    int64     `db:"amount"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}
