package service

import (
	"context"

	"github.com/aaANDkk/sutdychat/events"
	"github.com/aaANDkk/sutdychat/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// GetByID retrieves an account by id, nil on a miss
	GetByID(ctx context.Context, id int64) (*models.Account, error)

	// GetByUsername retrieves an account by username, nil on a miss
	GetByUsername(ctx context.Context, username string) (*models.Account, error)

	// Create creates a new account with a zero coin balance
	Create(ctx context.Context, username, email, credentialHash string) (*models.Account, error)

	// AddCoins increases an account's balance atomically
	AddCoins(ctx context.Context, id int64, amount int64) error

	// DeductCoins decreases an account's balance atomically, failing with
	// models.ErrInsufficientBalance when the balance does not cover the amount
	DeductCoins(ctx context.Context, id int64, amount int64) error
}

// FriendRepository defines the interface for friend link data access
type FriendRepository interface {
	// Create inserts a directed link from owner to friend
	Create(ctx context.Context, ownerID, friendID int64) (*models.FriendLink, error)

	// Delete removes the directed link from owner to friend
	Delete(ctx context.Context, ownerID, friendID int64) error

	// Exists reports whether a directed link from owner to friend exists
	Exists(ctx context.Context, ownerID, friendID int64) (bool, error)

	// ListFriends returns all accounts the owner has linked to
	ListFriends(ctx context.Context, ownerID int64) ([]*models.Account, error)
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// Create inserts a new immutable message
	Create(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error)

	// GetConversation returns messages between two accounts in either
	// direction, creation time ascending
	GetConversation(ctx context.Context, accountA, accountB int64) ([]*models.Message, error)
}

// CoinRecordRepository defines the interface for the append-only coin ledger
type CoinRecordRepository interface {
	// Record appends a ledger entry and fills in its id and timestamp
	Record(ctx context.Context, record *models.CoinRecord) error

	// GetByAccount returns ledger entries for an account, newest first
	GetByAccount(ctx context.Context, accountID int64, limit int) ([]*models.CoinRecord, error)

	// SumByAccount returns the sum of all entry amounts for an account
	SumByAccount(ctx context.Context, accountID int64) (int64, error)
}

// PrizeRepository defines the interface for prize catalog access
type PrizeRepository interface {
	// GetAvailable returns all prizes with the availability flag set
	GetAvailable(ctx context.Context) ([]*models.Prize, error)

	// GetAvailableByID retrieves an available prize by id, nil on a miss
	GetAvailableByID(ctx context.Context, id int64) (*models.Prize, error)
}

// AccountService defines the interface for account directory operations
type AccountService interface {
	// Register creates a new account from a username, email and opaque
	// credential hash
	Register(ctx context.Context, username, email, credentialHash string) (*models.Account, error)

	// GetByUsername retrieves an account, models.ErrUnknownAccount on a miss
	GetByUsername(ctx context.Context, username string) (*models.Account, error)

	// GetByID retrieves an account, models.ErrUnknownAccount on a miss
	GetByID(ctx context.Context, id int64) (*models.Account, error)
}

// FriendService defines the interface for relationship graph operations
type FriendService interface {
	// Link creates a directed friend link from owner to friend
	Link(ctx context.Context, ownerID, friendID int64) (*models.FriendLink, error)

	// Unlink removes the directed link from owner to friend
	Unlink(ctx context.Context, ownerID, friendID int64) error

	// ListFriends returns all accounts the owner has linked to
	ListFriends(ctx context.Context, ownerID int64) ([]*models.Account, error)
}

// MessageService defines the interface for the messaging gate
type MessageService interface {
	// Send validates eligibility and records the message plus the sender's
	// coin reward as one atomic unit
	Send(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error)

	// History returns the conversation between two accounts, oldest first
	History(ctx context.Context, accountA, accountB int64) ([]*models.Message, error)
}

// LedgerService defines the read surface of the incentive ledger. Balance
// mutation has no service entry point; it happens only through the Credit
// and Debit helpers inside another service's unit of work.
type LedgerService interface {
	// Records returns ledger entries for an account, newest first
	Records(ctx context.Context, accountID int64, limit int) ([]*models.CoinRecord, error)
}

// PrizeService defines the interface for the redemption market
type PrizeService interface {
	// ListAvailable returns all available prizes
	ListAvailable(ctx context.Context) ([]*models.Prize, error)

	// Redeem atomically debits the prize cost and records the redemption
	Redeem(ctx context.Context, actorID, prizeID int64) (*models.RedemptionResult, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	AccountRepository() AccountRepository
	FriendRepository() FriendRepository
	MessageRepository() MessageRepository
	CoinRecordRepository() CoinRecordRepository
	PrizeRepository() PrizeRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
