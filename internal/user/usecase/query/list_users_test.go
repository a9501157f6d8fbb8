package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flukechat/fluke-backend/internal/user/domain"
)

func TestListUsersHandler_Handle(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}}
	handler := NewListUsersHandler(repo)

	users, err := handler.Handle(context.Background(), ListUsersQuery{})

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestListUsersHandler_Handle_EmptyStore(t *testing.T) {
	handler := NewListUsersHandler(&fakeUserRepo{})

	users, err := handler.Handle(context.Background(), ListUsersQuery{})

	require.NoError(t, err)
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsersHandler_Handle_StorageFailure(t *testing.T) {
	handler := NewListUsersHandler(&fakeUserRepo{findErr: errors.New("connection reset by peer")})

	_, err := handler.Handle(context.Background(), ListUsersQuery{})

	require.Error(t, err)
}
