package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaANDkk/sutdychat/models"
	"github.com/aaANDkk/sutdychat/repository"
	"github.com/aaANDkk/sutdychat/repository/testutil"
)

func TestMessageRepository_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewMessageRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)
	bob := testutil.InsertTestAccount(t, testDB.DB, "bob", 0)

	msg, err := repo.Create(ctx, alice.ID, bob.ID, "hello")
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.Equal(t, alice.ID, msg.SenderID)
	assert.Equal(t, bob.ID, msg.ReceiverID)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestMessageRepository_Create_UnknownAccount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewMessageRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)

	_, err := repo.Create(ctx, alice.ID, 9999, "hello?")
	assert.ErrorIs(t, err, models.ErrUnknownAccount)
}

func TestMessageRepository_GetConversation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewMessageRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)
	bob := testutil.InsertTestAccount(t, testDB.DB, "bob", 0)
	carol := testutil.InsertTestAccount(t, testDB.DB, "carol", 0)

	first, err := repo.Create(ctx, alice.ID, bob.ID, "one")
	require.NoError(t, err)
	second, err := repo.Create(ctx, bob.ID, alice.ID, "two")
	require.NoError(t, err)
	third, err := repo.Create(ctx, alice.ID, bob.ID, "three")
	require.NoError(t, err)

	// Noise from another pair must not leak in.
	_, err = repo.Create(ctx, alice.ID, carol.ID, "unrelated")
	require.NoError(t, err)

	conversation, err := repo.GetConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, conversation, 3)

	// Both directions, oldest first.
	assert.Equal(t, first.ID, conversation[0].ID)
	assert.Equal(t, second.ID, conversation[1].ID)
	assert.Equal(t, third.ID, conversation[2].ID)

	// The pair order in the query does not matter.
	flipped, err := repo.GetConversation(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation, flipped)
}

func TestMessageRepository_GetConversation_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewMessageRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)
	bob := testutil.InsertTestAccount(t, testDB.DB, "bob", 0)

	conversation, err := repo.GetConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, conversation)
}
