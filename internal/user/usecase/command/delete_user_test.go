package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flukechat/fluke-backend/internal/user/domain"
)

func TestDeleteUserHandler_Handle(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[1] = domain.User{ID: 1, Username: "alice"}
	handler := NewDeleteUserHandler(repo)

	removed, err := handler.Handle(context.Background(), DeleteUserCommand{ID: 1})

	require.NoError(t, err)
	assert.True(t, removed)

	user, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestDeleteUserHandler_Handle_MissingID(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewDeleteUserHandler(repo)

	removed, err := handler.Handle(context.Background(), DeleteUserCommand{ID: 999})

	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteUserHandler_Handle_StorageFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.deleteErr = errors.New("connection reset by peer")
	handler := NewDeleteUserHandler(repo)

	_, err := handler.Handle(context.Background(), DeleteUserCommand{ID: 1})

	require.Error(t, err)
}
