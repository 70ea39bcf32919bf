package repo

import (
	"context"
	"testing"

	"github.com/Skotchmaster/webstore/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, r *GormRepo, username, email string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		PasswordHash: "x",
		FirstName:    "first",
		LastName:     "last",
		Email:        email,
		Active:       true,
	}
	require.NoError(t, r.DB.Create(&user).Error)
	return &user
}

func TestUserExistsByUsername(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, r, "alice", "a@x.com")

	taken, err := r.UserExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = r.UserExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestUserExistsByEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, r, "alice", "a@x.com")

	taken, err := r.UserExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = r.UserExistsByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.DeleteUser(context.Background(), 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
