//go:build wireinject
// +build wireinject

package user

import (
	"database/sql"

	"github.com/google/wire"

	"github.com/flukechat/fluke-backend/internal/user/delivery/http"
	"github.com/flukechat/fluke-backend/kafka"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *sql.DB, publisher *kafka.Publisher) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewUserHandler,
	)
	return nil, nil
}
