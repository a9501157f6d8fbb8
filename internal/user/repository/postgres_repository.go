package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flukechat/fluke-backend/internal/user/domain"
)

// PostgresUserRepository implements domain.UserRepository over database/sql.
// Every method is a single statement on a connection the pool scopes to the
// call, so there is nothing to roll back on failure.
type PostgresUserRepository struct {
	db *sql.DB
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// FindAll retrieves all users in storage order.
func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password
		FROM user_profile
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Password,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

// Create inserts a new user and returns the stored row with its generated id.
// The driver error is returned as-is: the signup workflow classifies it by
// its Postgres error code.
func (r *PostgresUserRepository) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	query := `
		INSERT INTO user_profile (username, first_name, last_name, email, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, first_name, last_name, email, password
	`

	user := &domain.User{}
	err := r.db.QueryRowContext(
		ctx,
		query,
		input.Username,
		input.FirstName,
		input.LastName,
		input.Email,
		input.Password,
	).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// FindByID retrieves a user by id. A missing row is (nil, nil).
func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password
		FROM user_profile
		WHERE id = $1
	`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// Delete removes the row matching id and reports whether exactly one row was
// removed. A missing id is (false, nil), not an error.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user_profile WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

// InitSchema creates the user_profile table if it doesn't exist. The unique
// constraints on username and email back the duplicate-key classification.
func (r *PostgresUserRepository) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS user_profile (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL
		)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
