package command

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flukechat/fluke-backend/internal/user/domain"
	"github.com/flukechat/fluke-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("user-service-test", false)
	os.Exit(m.Run())
}

// fakeUserRepo is an in-memory domain.UserRepository for usecase tests.
type fakeUserRepo struct {
	users     map[int64]domain.User
	nextID    int64
	createErr error
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user := domain.User{
		ID:        f.nextID,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	}
	f.users[user.ID] = user
	f.nextID++
	return &user, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func TestSignupUserHandler_Handle(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewSignupUserHandler(repo)

	result, err := handler.Handle(context.Background(), SignupUserCommand{
		Username:  "alice",
		FirstName: "A",
		LastName:  "L",
		Email:     "alice@x.com",
		Password:  "p",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.User.ID)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "/users/1", result.Location)
}

func TestSignupUserHandler_Handle_DuplicateKey(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = &pq.Error{Code: "23505", Constraint: "user_profile_username_key"}
	handler := NewSignupUserHandler(repo)

	_, err := handler.Handle(context.Background(), SignupUserCommand{
		Username: "alice",
		Email:    "other@x.com",
	})

	var signupErr *domain.SignupError
	require.ErrorAs(t, err, &signupErr)
	assert.Equal(t, domain.DuplicateKey, signupErr.Kind)
	assert.Equal(t, http.StatusConflict, signupErr.HTTPStatus())
	assert.Equal(t, "Duplicate username or email contained a duplicate key.", signupErr.Error())
}

func TestSignupUserHandler_Handle_ConnectionFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("connection reset by peer")
	handler := NewSignupUserHandler(repo)

	_, err := handler.Handle(context.Background(), SignupUserCommand{Username: "alice"})

	var signupErr *domain.SignupError
	require.ErrorAs(t, err, &signupErr)
	assert.Equal(t, domain.UnknownDatabase, signupErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, signupErr.HTTPStatus())
}
