package command

import (
	"context"
	"fmt"

	"github.com/flukechat/fluke-backend/internal/user/domain"
)

// DeleteUserCommand represents the command to delete a user
type DeleteUserCommand struct {
	ID int64
}

// DeleteUserHandler handles user deletion command
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the delete user command. It reports whether exactly one
// row was removed; deleting an absent id is not an error.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) (bool, error) {
	removed, err := h.repo.Delete(ctx, cmd.ID)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return removed, nil
}
