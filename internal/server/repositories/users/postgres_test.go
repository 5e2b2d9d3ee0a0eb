package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/adminsettings/internal/common"
	"github.com/dmitrijs2005/adminsettings/internal/server/models"
)

const (
	qInsert     = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+password_updated_at,\s*created_at\s*$`
	qSelectByID = `(?s)^SELECT\s+id,\s*email,\s*password_hash,\s*password_updated_at,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	qSelectByEm = `(?s)^SELECT\s+id,\s*email,\s*password_hash,\s*password_updated_at,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	qUpdateHash = `(?s)^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$2,\s*password_updated_at\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s*$`
)

var userColumns = []string{"id", "email", "password_hash", "password_updated_at", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(qInsert).
		WithArgs("u-1", "admin@example.com", "$argon2id$hash").
		WillReturnRows(sqlmock.NewRows([]string{"password_updated_at", "created_at"}).AddRow(now, now))

	u := &models.User{ID: "u-1", Email: "  Admin@Example.com ", PasswordHash: "$argon2id$hash"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Email != "admin@example.com" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs("u-1", "admin@example.com", "h").
		WillReturnError(errors.New("duplicate key"))

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1", Email: "admin@example.com", PasswordHash: "h"})
	if err == nil || !regexp.MustCompile(`db error: .*duplicate key`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(qSelectByID).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u-1", "admin@example.com", "h", now, now))

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "admin@example.com" || got.PasswordHash != "h" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NormalizesAndFinds(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(qSelectByEm).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u-1", "admin@example.com", "h", now, now))

	got, err := repo.GetByEmail(context.Background(), "ADMIN@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelectByEm).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelectByID).
		WithArgs("u-1").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByID(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdatePasswordHash(t *testing.T) {
	at := time.Now()

	tests := []struct {
		name     string
		result   sql.Result
		execErr  error
		wantErr  error
		anyError bool
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "unknown user", result: sqlmock.NewResult(0, 0), wantErr: common.ErrorNotFound},
		{name: "db error", execErr: errors.New("db down"), anyError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			exp := mock.ExpectExec(qUpdateHash).WithArgs("u-1", "new-hash", at)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpdatePasswordHash(context.Background(), "u-1", "new-hash", at)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
			case tt.anyError:
				if err == nil {
					t.Fatal("expected error")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}
