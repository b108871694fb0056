package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/testing/suite"
)

func TestUserRepository_Save(t *testing.T) {
	t.Run("Save_Success", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		userRepo := NewUserRepository(db.Connection)

		// Given: a new user
		user := &entity.User{Username: "alice", PasswordHash: "hash", Token: "token"}

		// When: Save is called
		err := userRepo.Save(ctx, user)

		// Then: the user gets an id and can be found
		require.NoError(t, err)
		assert.NotZero(t, user.ID)

		found, err := userRepo.Find(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user, found)
	})

	t.Run("Save_Duplicate", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		userRepo := NewUserRepository(db.Connection)

		// Given: alice is already stored
		require.NoError(t, userRepo.Save(ctx, &entity.User{Username: "alice", PasswordHash: "hash", Token: "t1"}))

		// When: alice is saved again
		err := userRepo.Save(ctx, &entity.User{Username: "alice", PasswordHash: "other", Token: "t2"})

		// Then: the duplicate is rejected
		require.ErrorIs(t, err, apperror.ErrUserExists)
	})
}

func TestUserRepository_Find_NotFound(t *testing.T) {
	ctx, db := suite.NewSQLite(t)
	userRepo := NewUserRepository(db.Connection)

	user, err := userRepo.Find(ctx, "ghost")

	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateToken(t *testing.T) {
	ctx, db := suite.NewSQLite(t)
	userRepo := NewUserRepository(db.Connection)
	require.NoError(t, userRepo.Save(ctx, &entity.User{Username: "alice", PasswordHash: "hash", Token: "old"}))

	// When: the token is replaced
	require.NoError(t, userRepo.UpdateToken(ctx, "alice", "new"))

	// Then: the new token is stored and unknown users are reported
	found, err := userRepo.Find(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "new", found.Token)

	require.ErrorIs(t, userRepo.UpdateToken(ctx, "ghost", "x"), apperror.ErrNotFound)
}

func TestUserRepository_Count(t *testing.T) {
	ctx, db := suite.NewSQLite(t)
	userRepo := NewUserRepository(db.Connection)

	count, err := userRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, userRepo.Save(ctx, &entity.User{Username: "alice", PasswordHash: "h", Token: "t"}))
	require.NoError(t, userRepo.Save(ctx, &entity.User{Username: "bob", PasswordHash: "h", Token: "t"}))

	count, err = userRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
