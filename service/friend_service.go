package service

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/models"
)

// friendService implements the FriendService interface
type friendService struct {
	uowFactory UnitOfWorkFactory
}

// NewFriendService creates a new friend service
func NewFriendService(uowFactory UnitOfWorkFactory) FriendService {
	return &friendService{uowFactory: uowFactory}
}

// Link creates a directed friend link from owner to friend. Links are not
// symmetrized: A->B does not create B->A. Self-links are permitted.
func (s *friendService) Link(ctx context.Context, ownerID, friendID int64) (*models.FriendLink, error) {
	var link *models.FriendLink
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		friend, err := uow.AccountRepository().GetByID(ctx, friendID)
		if err != nil {
			return fmt.Errorf("failed to check friend account: %w", err)
		}
		if friend == nil {
			return models.ErrUnknownAccount
		}

		link, err = uow.FriendRepository().Create(ctx, ownerID, friendID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Unlink removes the directed link from owner to friend.
func (s *friendService) Unlink(ctx context.Context, ownerID, friendID int64) error {
	return runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		return uow.FriendRepository().Delete(ctx, ownerID, friendID)
	})
}

// ListFriends returns all accounts the owner has linked to.
func (s *friendService) ListFriends(ctx context.Context, ownerID int64) ([]*models.Account, error) {
	var friends []*models.Account
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		var err error
		friends, err = uow.FriendRepository().ListFriends(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return friends, nil
}
