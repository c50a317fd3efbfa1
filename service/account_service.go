package service

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/events"
	"github.com/aaANDkk/sutdychat/models"
)

// accountService implements the AccountService interface
type accountService struct {
	uowFactory UnitOfWorkFactory
}

// NewAccountService creates a new account service
func NewAccountService(uowFactory UnitOfWorkFactory) AccountService {
	return &accountService{uowFactory: uowFactory}
}

// Register creates a new account. The username pre-check gives a friendly
// early failure; the unique constraints in the repository close the race
// window between check and insert.
func (s *accountService) Register(ctx context.Context, username, email, credentialHash string) (*models.Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username must not be empty")
	}
	if email == "" {
		return nil, fmt.Errorf("email must not be empty")
	}

	var account *models.Account
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		existing, err := uow.AccountRepository().GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to check existing account: %w", err)
		}
		if existing != nil {
			return models.ErrDuplicateIdentity
		}

		account, err = uow.AccountRepository().Create(ctx, username, email, credentialHash)
		if err != nil {
			return err
		}

		uow.EventBus().Publish(events.AccountCreatedEvent{
			AccountID: account.ID,
			Username:  account.Username,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetByUsername retrieves an account by username.
func (s *accountService) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account *models.Account
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		var err error
		account, err = uow.AccountRepository().GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if account == nil {
			return models.ErrUnknownAccount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByID retrieves an account by id.
func (s *accountService) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var account *models.Account
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		var err error
		account, err = uow.AccountRepository().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			return models.ErrUnknownAccount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}
