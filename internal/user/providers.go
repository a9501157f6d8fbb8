package user

import (
	"database/sql"

	"github.com/google/wire"

	"github.com/flukechat/fluke-backend/internal/user/domain"
	"github.com/flukechat/fluke-backend/internal/user/repository"
)

// ProvideUserRepository provides the traced user repository
func ProvideUserRepository(db *sql.DB) domain.UserRepository {
	return repository.NewTracingUserRepository(repository.NewPostgresUserRepository(db))
}

// RepositorySet provides repository dependencies
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)
