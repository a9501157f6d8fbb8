package command

import (
	"context"
	"fmt"

	"github.com/flukechat/fluke-backend/internal/user/domain"
)

// SignupUserCommand represents the command to sign up a new user
type SignupUserCommand struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SignupResult carries the created user and the location of the new resource.
type SignupResult struct {
	User     *domain.User
	Location string
}

// SignupUserHandler handles the signup command
type SignupUserHandler struct {
	repo domain.UserRepository
}

// NewSignupUserHandler creates a new signup handler
func NewSignupUserHandler(repo domain.UserRepository) *SignupUserHandler {
	return &SignupUserHandler{repo: repo}
}

// Handle executes the signup command. The insert is a single atomic
// statement, so a failure leaves no partial state; storage errors come back
// as a classified *domain.SignupError.
func (h *SignupUserHandler) Handle(ctx context.Context, cmd SignupUserCommand) (*SignupResult, error) {
	input := domain.CreateUserInput{
		Username:  cmd.Username,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
		Password:  cmd.Password,
	}

	user, err := h.repo.Create(ctx, input)
	if err != nil {
		return nil, domain.ClassifySignupError(err)
	}

	return &SignupResult{
		User:     user,
		Location: fmt.Sprintf("/users/%d", user.ID),
	}, nil
}
