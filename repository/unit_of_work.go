package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aaANDkk/sutdychat/database"
	"github.com/aaANDkk/sutdychat/events"
	"github.com/aaANDkk/sutdychat/models"
	"github.com/aaANDkk/sutdychat/service"
)

// unitOfWork implements the service.UnitOfWork interface
type unitOfWork struct {
	db               *database.DB
	tx               pgx.Tx
	ctx              context.Context
	transactionalBus *events.TransactionalBus
	accountRepo      service.AccountRepository
	friendRepo       service.FriendRepository
	messageRepo      service.MessageRepository
	coinRecordRepo   service.CoinRecordRepository
	prizeRepo        service.PrizeRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB, eventBus *events.Bus) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:       db,
		eventBus: eventBus,
	}
}

type unitOfWorkFactory struct {
	db       *database.DB
	eventBus *events.Bus
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		db:               f.db,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
	}
}

// Begin starts a new transaction. A failure to acquire one is a
// storage-layer fault, tagged models.ErrStorageUnavailable.
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories with the transaction
	u.accountRepo = newAccountRepositoryWithTx(tx)
	u.friendRepo = newFriendRepositoryWithTx(tx)
	u.messageRepo = newMessageRepositoryWithTx(tx)
	u.coinRecordRepo = newCoinRecordRepositoryWithTx(tx)
	u.prizeRepo = newPrizeRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction and flushes pending events.
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	if u.transactionalBus != nil {
		u.transactionalBus.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction and discards pending events.
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	if u.transactionalBus != nil {
		u.transactionalBus.Discard()
	}

	return nil
}

// AccountRepository returns the account repository for this unit of work
func (u *unitOfWork) AccountRepository() service.AccountRepository {
	if u.accountRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.accountRepo
}

// FriendRepository returns the friend repository for this unit of work
func (u *unitOfWork) FriendRepository() service.FriendRepository {
	if u.friendRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.friendRepo
}

// MessageRepository returns the message repository for this unit of work
func (u *unitOfWork) MessageRepository() service.MessageRepository {
	if u.messageRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.messageRepo
}

// CoinRecordRepository returns the coin record repository for this unit of work
func (u *unitOfWork) CoinRecordRepository() service.CoinRecordRepository {
	if u.coinRecordRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.coinRecordRepo
}

// PrizeRepository returns the prize repository for this unit of work
func (u *unitOfWork) PrizeRepository() service.PrizeRepository {
	if u.prizeRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.prizeRepo
}

// EventBus returns the transactional event bus for this unit of work
func (u *unitOfWork) EventBus() service.EventPublisher {
	if u.transactionalBus == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalBus
}
