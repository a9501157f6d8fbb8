package domain

import "context"

// User represents the user entity (domain model). The id is assigned by the
// database on insert and never changes afterwards.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// CreateUserInput carries the writable fields supplied on signup. Uniqueness
// of username and email is enforced by the user_profile constraints, not here.
type CreateUserInput struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserRepository defines the contract for user data access. Each method runs
// exactly one SQL statement on a connection scoped to the call.
type UserRepository interface {
	// FindAll returns every stored user; an empty store yields an empty
	// slice, not an error.
	FindAll(ctx context.Context) ([]User, error)

	// Create inserts a new user and returns the stored row including the
	// generated id. Driver errors are returned unwrapped so the caller can
	// classify them.
	Create(ctx context.Context, input CreateUserInput) (*User, error)

	// FindByID returns (nil, nil) when no row matches; absence is a valid
	// outcome, not an error.
	FindByID(ctx context.Context, id int64) (*User, error)

	// Delete removes at most the one row matching id and reports whether
	// exactly one row was removed. A missing id is (false, nil).
	Delete(ctx context.Context, id int64) (bool, error)
}
