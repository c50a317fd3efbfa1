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

func TestFriendRepository_CreateAndExists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewFriendRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)
	bob := testutil.InsertTestAccount(t, testDB.DB, "bob", 0)

	link, err := repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.NotZero(t, link.ID)
	assert.Equal(t, alice.ID, link.OwnerID)
	assert.Equal(t, bob.ID, link.FriendID)

	exists, err := repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Direction matters: the reverse link does not exist.
	reverse, err := repo.Exists(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFriendRepository_Create_AlreadyLinked(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewFriendRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)
	bob := testutil.InsertTestAccount(t, testDB.DB, "bob", 0)

	_, err := repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = repo.Create(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyLinked)

	// The reverse direction is a separate link and still succeeds.
	_, err = repo.Create(ctx, bob.ID, alice.ID)
	assert.NoError(t, err)
}

func TestFriendRepository_Create_UnknownAccount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewFriendRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)

	_, err := repo.Create(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, models.ErrUnknownAccount)
}

func TestFriendRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewFriendRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)
	bob := testutil.InsertTestAccount(t, testDB.DB, "bob", 0)
	testutil.InsertTestFriendLink(t, testDB.DB, alice.ID, bob.ID)

	require.NoError(t, repo.Delete(ctx, alice.ID, bob.ID))

	exists, err := repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again reports the missing link.
	err = repo.Delete(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, models.ErrNotLinked)

	// Unlink then relink works.
	_, err = repo.Create(ctx, alice.ID, bob.ID)
	assert.NoError(t, err)
}

func TestFriendRepository_ListFriends(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := repository.NewFriendRepository(testDB.DB)
	ctx := context.Background()

	alice := testutil.InsertTestAccount(t, testDB.DB, "alice", 0)
	bob := testutil.InsertTestAccount(t, testDB.DB, "bob", 0)
	carol := testutil.InsertTestAccount(t, testDB.DB, "carol", 0)

	testutil.InsertTestFriendLink(t, testDB.DB, alice.ID, bob.ID)
	testutil.InsertTestFriendLink(t, testDB.DB, alice.ID, carol.ID)
	// Carol's own links never show up in Alice's list.
	testutil.InsertTestFriendLink(t, testDB.DB, carol.ID, alice.ID)

	friends, err := repo.ListFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, bob.ID, friends[0].ID)
	assert.Equal(t, carol.ID, friends[1].ID)

	empty, err := repo.ListFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
