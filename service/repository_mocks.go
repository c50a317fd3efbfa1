package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aaANDkk/sutdychat/events"
	"github.com/aaANDkk/sutdychat/models"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, username, email, credentialHash string) (*models.Account, error) {
	args := m.Called(ctx, username, email, credentialHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) AddCoins(ctx context.Context, id int64, amount int64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockAccountRepository) DeductCoins(ctx context.Context, id int64, amount int64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

// MockFriendRepository is a mock implementation of FriendRepository
type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) Create(ctx context.Context, ownerID, friendID int64) (*models.FriendLink, error) {
	args := m.Called(ctx, ownerID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FriendLink), args.Error(1)
}

func (m *MockFriendRepository) Delete(ctx context.Context, ownerID, friendID int64) error {
	args := m.Called(ctx, ownerID, friendID)
	return args.Error(0)
}

func (m *MockFriendRepository) Exists(ctx context.Context, ownerID, friendID int64) (bool, error) {
	args := m.Called(ctx, ownerID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendRepository) ListFriends(ctx context.Context, ownerID int64) ([]*models.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Account), args.Error(1)
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	args := m.Called(ctx, senderID, receiverID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) GetConversation(ctx context.Context, accountA, accountB int64) ([]*models.Message, error) {
	args := m.Called(ctx, accountA, accountB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

// MockCoinRecordRepository is a mock implementation of CoinRecordRepository
type MockCoinRecordRepository struct {
	mock.Mock
}

func (m *MockCoinRecordRepository) Record(ctx context.Context, record *models.CoinRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCoinRecordRepository) GetByAccount(ctx context.Context, accountID int64, limit int) ([]*models.CoinRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CoinRecord), args.Error(1)
}

func (m *MockCoinRecordRepository) SumByAccount(ctx context.Context, accountID int64) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPrizeRepository is a mock implementation of PrizeRepository
type MockPrizeRepository struct {
	mock.Mock
}

func (m *MockPrizeRepository) GetAvailable(ctx context.Context) ([]*models.Prize, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Prize), args.Error(1)
}

func (m *MockPrizeRepository) GetAvailableByID(ctx context.Context, id int64) (*models.Prize, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prize), args.Error(1)
}

// capturingPublisher collects published events for assertions
type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) Publish(event events.Event) {
	p.published = append(p.published, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	accountRepo    AccountRepository
	friendRepo     FriendRepository
	messageRepo    MessageRepository
	coinRecordRepo CoinRecordRepository
	prizeRepo      PrizeRepository
	publisher      *capturingPublisher
}

// SetRepositories configures the repositories returned by this unit of work
func (m *MockUnitOfWork) SetRepositories(
	accounts AccountRepository,
	friends FriendRepository,
	messages MessageRepository,
	coinRecords CoinRecordRepository,
	prizes PrizeRepository,
) {
	m.accountRepo = accounts
	m.friendRepo = friends
	m.messageRepo = messages
	m.coinRecordRepo = coinRecords
	m.prizeRepo = prizes
	m.publisher = &capturingPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) AccountRepository() AccountRepository       { return m.accountRepo }
func (m *MockUnitOfWork) FriendRepository() FriendRepository        { return m.friendRepo }
func (m *MockUnitOfWork) MessageRepository() MessageRepository      { return m.messageRepo }
func (m *MockUnitOfWork) CoinRecordRepository() CoinRecordRepository { return m.coinRecordRepo }
func (m *MockUnitOfWork) PrizeRepository() PrizeRepository          { return m.prizeRepo }
func (m *MockUnitOfWork) EventBus() EventPublisher                  { return m.publisher }

// PublishedEvents returns the events captured during the test
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	return m.publisher.published
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
