package service

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/events"
	"github.com/aaANDkk/sutdychat/models"
)

// prizeService implements the PrizeService interface
type prizeService struct {
	uowFactory UnitOfWorkFactory
}

// NewPrizeService creates a new prize service
func NewPrizeService(uowFactory UnitOfWorkFactory) PrizeService {
	return &prizeService{uowFactory: uowFactory}
}

// ListAvailable returns all available prizes.
func (s *prizeService) ListAvailable(ctx context.Context) ([]*models.Prize, error) {
	var prizes []*models.Prize
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		var err error
		prizes, err = uow.PrizeRepository().GetAvailable(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}
	return prizes, nil
}

// Redeem debits the prize cost and appends the ledger entry as one atomic
// unit. models.ErrInsufficientBalance from the debit propagates unwrapped;
// on any failure the caller has paid nothing.
func (s *prizeService) Redeem(ctx context.Context, actorID, prizeID int64) (*models.RedemptionResult, error) {
	var result *models.RedemptionResult
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		prize, err := uow.PrizeRepository().GetAvailableByID(ctx, prizeID)
		if err != nil {
			return fmt.Errorf("failed to get prize: %w", err)
		}
		if prize == nil {
			return models.ErrPrizeNotFound
		}

		reason := models.ReasonRedeemPrefix + prize.Name

		var record *models.CoinRecord
		if prize.Cost > 0 {
			record, err = Debit(ctx, uow, actorID, prize.Cost, reason)
			if err != nil {
				return err
			}
		} else {
			// Free prizes still leave an audit trail, without touching
			// the balance.
			record = &models.CoinRecord{AccountID: actorID, Amount: 0, Reason: reason}
			if err := uow.CoinRecordRepository().Record(ctx, record); err != nil {
				return fmt.Errorf("failed to record redemption: %w", err)
			}
		}

		account, err := uow.AccountRepository().GetByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("failed to get remaining balance: %w", err)
		}
		if account == nil {
			return models.ErrUnknownAccount
		}

		result = &models.RedemptionResult{
			Prize:            prize,
			CoinRecordID:     record.ID,
			RemainingBalance: account.Coins,
		}

		uow.EventBus().Publish(events.PrizeRedeemedEvent{
			AccountID:        actorID,
			PrizeID:          prize.ID,
			PrizeName:        prize.Name,
			Cost:             prize.Cost,
			RemainingBalance: account.Coins,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
