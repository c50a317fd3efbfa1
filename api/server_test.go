package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aaANDkk/sutdychat/auth"
	"github.com/aaANDkk/sutdychat/models"
)

var testJWTSecret = []byte("test-jwt-secret")

type testServer struct {
	handler  http.Handler
	accounts *mockAccountService
	friends  *mockFriendService
	messages *mockMessageService
	ledger   *mockLedgerService
	prizes   *mockPrizeService
}

func newTestServer() *testServer {
	ts := &testServer{
		accounts: new(mockAccountService),
		friends:  new(mockFriendService),
		messages: new(mockMessageService),
		ledger:   new(mockLedgerService),
		prizes:   new(mockPrizeService),
	}
	srv := NewServer(ts.accounts, ts.friends, ts.messages, ts.ledger, ts.prizes, testJWTSecret, time.Hour)
	ts.handler = srv.Handler()
	return ts
}

// authorize registers the actor with the account mock and returns a valid
// bearer header for it.
func (ts *testServer) authorize(t *testing.T, actor *models.Account) string {
	t.Helper()
	token, err := auth.GenerateToken(actor.ID, actor.Username, testJWTSecret, time.Hour)
	require.NoError(t, err)
	ts.accounts.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	return "Bearer " + token
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterEndpoint(t *testing.T) {
	ts := newTestServer()

	created := &models.Account{ID: 1, Username: "alice", Email: "alice@example.com", Coins: 0}
	ts.accounts.On("Register", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
		Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	rec := ts.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp accountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, int64(0), resp.Coins)

	// The hash is derived server-side, never the raw password.
	call := ts.accounts.Calls[0]
	assert.NotEqual(t, "secret123", call.Arguments.String(3))

	// The credential hash never appears in the response body.
	assert.NotContains(t, rec.Body.String(), "credential_hash")
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	ts := newTestServer()

	ts.accounts.On("Register", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
		Return(nil, models.ErrDuplicateIdentity)

	req := httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	rec := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	ts := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, map[string]string{
		"username": "alice",
	}))
	rec := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.accounts.AssertNotCalled(t, "Register")
}

func TestTokenEndpoint(t *testing.T) {
	ts := newTestServer()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	account := &models.Account{ID: 1, Username: "alice", CredentialHash: hash}
	ts.accounts.On("GetByUsername", mock.Anything, "alice").Return(account, nil)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := auth.ParseToken(resp.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AccountID)
}

func TestTokenEndpoint_BadPassword(t *testing.T) {
	ts := newTestServer()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	account := &models.Account{ID: 1, Username: "alice", CredentialHash: hash}
	ts.accounts.On("GetByUsername", mock.Anything, "alice").Return(account, nil)

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := ts.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenEndpoint_UnknownUser(t *testing.T) {
	ts := newTestServer()

	ts.accounts.On("GetByUsername", mock.Anything, "ghost").Return(nil, models.ErrUnknownAccount)

	form := url.Values{"username": {"ghost"}, "password": {"whatever"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := ts.do(req)

	// Indistinguishable from a bad password.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "incorrect username or password")
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = ts.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeEndpoint(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice", Coins: 5}
	header := ts.authorize(t, actor)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp accountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, int64(5), resp.Coins)
}

func TestAddFriendEndpoint(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice"}
	header := ts.authorize(t, actor)

	link := &models.FriendLink{ID: 7, OwnerID: 1, FriendID: 2}
	ts.friends.On("Link", mock.Anything, int64(1), int64(2)).Return(link, nil)

	req := httptest.NewRequest(http.MethodPost, "/friends", jsonBody(t, map[string]int64{"friend_id": 2}))
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp friendLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.FriendID)
}

func TestAddFriendEndpoint_AlreadyLinked(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice"}
	header := ts.authorize(t, actor)

	ts.friends.On("Link", mock.Anything, int64(1), int64(2)).Return(nil, models.ErrAlreadyLinked)

	req := httptest.NewRequest(http.MethodPost, "/friends", jsonBody(t, map[string]int64{"friend_id": 2}))
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteFriendEndpoint_NotLinked(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice"}
	header := ts.authorize(t, actor)

	ts.friends.On("Unlink", mock.Anything, int64(1), int64(2)).Return(models.ErrNotLinked)

	req := httptest.NewRequest(http.MethodDelete, "/friends/2", nil)
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessageEndpoint(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice"}
	header := ts.authorize(t, actor)

	message := &models.Message{ID: 3, SenderID: 1, ReceiverID: 2, Content: "hello"}
	ts.messages.On("Send", mock.Anything, int64(1), int64(2), "hello").Return(message, nil)

	req := httptest.NewRequest(http.MethodPost, "/messages", jsonBody(t, map[string]any{
		"receiver_id": 2,
		"content":     "hello",
	}))
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Content)
}

func TestSendMessageEndpoint_NotFriends(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice"}
	header := ts.authorize(t, actor)

	ts.messages.On("Send", mock.Anything, int64(1), int64(2), "hello").Return(nil, models.ErrNotFriends)

	req := httptest.NewRequest(http.MethodPost, "/messages", jsonBody(t, map[string]any{
		"receiver_id": 2,
		"content":     "hello",
	}))
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCoinsEndpoint(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice", Coins: 2}
	header := ts.authorize(t, actor)

	// The balance endpoint re-reads; return a fresher value than the
	// actor snapshot.
	fresh := &models.Account{ID: 1, Username: "alice", Coins: 9}
	ts.accounts.ExpectedCalls = nil
	ts.accounts.On("GetByID", mock.Anything, int64(1)).Return(actor, nil).Once()
	ts.accounts.On("GetByID", mock.Anything, int64(1)).Return(fresh, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/coins", nil)
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"coins":9}`, rec.Body.String())
}

func TestCoinRecordsEndpoint(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice"}
	header := ts.authorize(t, actor)

	records := []*models.CoinRecord{
		{ID: 2, AccountID: 1, Amount: -10, Reason: "redeem:Sticker Pack"},
		{ID: 1, AccountID: 1, Amount: 1, Reason: "message_sent"},
	}
	ts.ledger.On("Records", mock.Anything, int64(1), coinRecordLimit).Return(records, nil)

	req := httptest.NewRequest(http.MethodGet, "/coin-records", nil)
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []coinRecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(-10), resp[0].Amount)
}

func TestListPrizesEndpoint_NoAuthRequired(t *testing.T) {
	ts := newTestServer()

	prizes := []*models.Prize{
		{ID: 1, Name: "Sticker Pack", Cost: 10, Available: true},
	}
	ts.prizes.On("ListAvailable", mock.Anything).Return(prizes, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/prizes", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []prizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Sticker Pack", resp[0].Name)
}

func TestRedeemEndpoint(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice", Coins: 60}
	header := ts.authorize(t, actor)

	result := &models.RedemptionResult{
		Prize:            &models.Prize{ID: 2, Name: "Profile Badge", Cost: 50},
		CoinRecordID:     11,
		RemainingBalance: 10,
	}
	ts.prizes.On("Redeem", mock.Anything, int64(1), int64(2)).Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/prizes/2/redeem", nil)
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp redemptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.RemainingBalance)
	assert.Equal(t, int64(11), resp.CoinRecordID)
}

func TestRedeemEndpoint_InsufficientBalance(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice", Coins: 5}
	header := ts.authorize(t, actor)

	ts.prizes.On("Redeem", mock.Anything, int64(1), int64(2)).Return(nil, models.ErrInsufficientBalance)

	req := httptest.NewRequest(http.MethodPost, "/prizes/2/redeem", nil)
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRedeemEndpoint_NotFound(t *testing.T) {
	ts := newTestServer()

	actor := &models.Account{ID: 1, Username: "alice"}
	header := ts.authorize(t, actor)

	ts.prizes.On("Redeem", mock.Anything, int64(1), int64(99)).Return(nil, models.ErrPrizeNotFound)

	req := httptest.NewRequest(http.MethodPost, "/prizes/99/redeem", nil)
	req.Header.Set("Authorization", header)
	rec := ts.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
