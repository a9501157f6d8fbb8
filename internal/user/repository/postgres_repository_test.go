package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/flukechat/fluke-backend/internal/user/domain"
)

var userColumns = []string{"id", "username", "first_name", "last_name", "email", "password"}

func TestPostgresUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO user_profile \(username, first_name, last_name, email, password\)`).
		WithArgs("alice", "A", "L", "alice@x.com", "p").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "alice", "A", "L", "alice@x.com", "p"))

	repo := NewPostgresUserRepository(db)
	user, err := repo.Create(context.Background(), domain.CreateUserInput{
		Username:  "alice",
		FirstName: "A",
		LastName:  "L",
		Email:     "alice@x.com",
		Password:  "p",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID != 1 || user.Username != "alice" || user.Email != "alice@x.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostgresUserRepository_Create_DriverErrorEscapesUnwrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	driverErr := &pq.Error{Code: "23505", Constraint: "user_profile_email_key"}
	mock.ExpectQuery(`INSERT INTO user_profile`).
		WithArgs("alice", "A", "L", "alice@x.com", "p").
		WillReturnError(driverErr)

	repo := NewPostgresUserRepository(db)
	_, err = repo.Create(context.Background(), domain.CreateUserInput{
		Username:  "alice",
		FirstName: "A",
		LastName:  "L",
		Email:     "alice@x.com",
		Password:  "p",
	})
	if err == nil {
		t.Fatal("expected error for duplicate insert")
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		t.Fatalf("expected *pq.Error to escape, got: %v", err)
	}
	if string(pqErr.Code) != "23505" {
		t.Errorf("expected code 23505, got: %s", pqErr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostgresUserRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, first_name, last_name, email, password`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice", "A", "L", "alice@x.com", "p").
			AddRow(2, "bob", "B", "M", "bob@x.com", "q"))

	repo := NewPostgresUserRepository(db)
	users, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "bob" {
		t.Errorf("unexpected users: %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostgresUserRepository_FindAll_EmptyStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, first_name, last_name, email, password`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	repo := NewPostgresUserRepository(db)
	users, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if users == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostgresUserRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, first_name, last_name, email, password`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "alice", "A", "L", "alice@x.com", "p"))

	repo := NewPostgresUserRepository(db)
	user, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user == nil || user.ID != 1 || user.Username != "alice" {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostgresUserRepository_FindByID_AbsenceIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, first_name, last_name, email, password`).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	repo := NewPostgresUserRepository(db)
	user, err := repo.FindByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected nil error for absent user, got: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostgresUserRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM user_profile WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresUserRepository(db)
	removed, err := repo.Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("expected removed == true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPostgresUserRepository_Delete_MissingIDIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM user_profile WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresUserRepository(db)
	removed, err := repo.Delete(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected nil error for missing id, got: %v", err)
	}
	if removed {
		t.Error("expected removed == false")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
