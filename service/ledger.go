package service

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/events"
	"github.com/aaANDkk/sutdychat/models"
)

// MessageReward is the number of coins credited per message sent.
const MessageReward = 1

// Credit appends a positive ledger entry and increases the account's balance
// within the given unit of work. This is the single entry point for coin
// gains; callers guarantee amount > 0.
func Credit(ctx context.Context, uow UnitOfWork, accountID int64, amount int64, reason string) (*models.CoinRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive")
	}

	if err := uow.AccountRepository().AddCoins(ctx, accountID, amount); err != nil {
		return nil, fmt.Errorf("failed to add coins: %w", err)
	}

	record := &models.CoinRecord{
		AccountID: accountID,
		Amount:    amount,
		Reason:    reason,
	}
	if err := uow.CoinRecordRepository().Record(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record credit: %w", err)
	}

	uow.EventBus().Publish(events.CoinChangeEvent{
		AccountID: accountID,
		Amount:    amount,
		Reason:    reason,
	})

	return record, nil
}

// Debit appends a negative ledger entry and decreases the account's balance
// within the given unit of work. The balance check and the mutation are one
// conditional update at the storage layer, so concurrent debits on the same
// account serialize there; models.ErrInsufficientBalance surfaces verbatim.
func Debit(ctx context.Context, uow UnitOfWork, accountID int64, amount int64, reason string) (*models.CoinRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive")
	}

	if err := uow.AccountRepository().DeductCoins(ctx, accountID, amount); err != nil {
		return nil, err
	}

	record := &models.CoinRecord{
		AccountID: accountID,
		Amount:    -amount,
		Reason:    reason,
	}
	if err := uow.CoinRecordRepository().Record(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record debit: %w", err)
	}

	uow.EventBus().Publish(events.CoinChangeEvent{
		AccountID: accountID,
		Amount:    -amount,
		Reason:    reason,
	})

	return record, nil
}

// ledgerService implements the LedgerService read surface
type ledgerService struct {
	uowFactory UnitOfWorkFactory
}

// NewLedgerService creates a new ledger service
func NewLedgerService(uowFactory UnitOfWorkFactory) LedgerService {
	return &ledgerService{uowFactory: uowFactory}
}

// Records returns ledger entries for an account, newest first.
func (s *ledgerService) Records(ctx context.Context, accountID int64, limit int) ([]*models.CoinRecord, error) {
	var records []*models.CoinRecord
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		var err error
		records, err = uow.CoinRecordRepository().GetByAccount(ctx, accountID, limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get coin records: %w", err)
	}
	return records, nil
}
