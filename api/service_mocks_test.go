package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aaANDkk/sutdychat/models"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Register(ctx context.Context, username, email, credentialHash string) (*models.Account, error) {
	args := m.Called(ctx, username, email, credentialHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountService) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountService) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type mockFriendService struct {
	mock.Mock
}

func (m *mockFriendService) Link(ctx context.Context, ownerID, friendID int64) (*models.FriendLink, error) {
	args := m.Called(ctx, ownerID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FriendLink), args.Error(1)
}

func (m *mockFriendService) Unlink(ctx context.Context, ownerID, friendID int64) error {
	args := m.Called(ctx, ownerID, friendID)
	return args.Error(0)
}

func (m *mockFriendService) ListFriends(ctx context.Context, ownerID int64) ([]*models.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Account), args.Error(1)
}

type mockMessageService struct {
	mock.Mock
}

func (m *mockMessageService) Send(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	args := m.Called(ctx, senderID, receiverID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *mockMessageService) History(ctx context.Context, accountA, accountB int64) ([]*models.Message, error) {
	args := m.Called(ctx, accountA, accountB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) Records(ctx context.Context, accountID int64, limit int) ([]*models.CoinRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CoinRecord), args.Error(1)
}

type mockPrizeService struct {
	mock.Mock
}

func (m *mockPrizeService) ListAvailable(ctx context.Context) ([]*models.Prize, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Prize), args.Error(1)
}

func (m *mockPrizeService) Redeem(ctx context.Context, actorID, prizeID int64) (*models.RedemptionResult, error) {
	args := m.Called(ctx, actorID, prizeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RedemptionResult), args.Error(1)
}
