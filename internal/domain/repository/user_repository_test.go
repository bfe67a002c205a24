package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"taskdeck/internal/common"
	"taskdeck/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func newUserRepoWithMock(t *testing.T) (UserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPgUserRepository(db), mock, db
}

var userRows = []string{"id", "username", "email", "first_name", "last_name", "hashed_password", "is_active", "role", "phone_number", "created_at", "updated_at"}

func TestUserCreate_Success(t *testing.T) {
	repo, mock, db := newUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@x.com", "Alice", "A", "digest", true, "user", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	user := &model.User{
		Username: "alice", Email: "alice@x.com", FirstName: "Alice", LastName: "A",
		HashedPassword: "digest", IsActive: true, Role: "user",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &model.User{Username: "alice", Email: "alice@x.com"})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate user, got %v", err)
	}
}

func TestUserFindByUsername_NotFound(t *testing.T) {
	repo, mock, db := newUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserFindByUsername_Success(t *testing.T) {
	repo, mock, db := newUserRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(int64(1), "alice", "alice@x.com", "Alice", "A", "digest", true, "user", "", now, now))

	user, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername error: %v", err)
	}
	if user.ID != 1 || user.Username != "alice" || user.HashedPassword != "digest" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserUpdatePassword_NoRows(t *testing.T) {
	repo, mock, db := newUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET hashed_password`).
		WithArgs("newdigest", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), 99, "newdigest")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent user, got %v", err)
	}
}
