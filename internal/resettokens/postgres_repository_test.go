package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/peerprep/user-service/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func tokenRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}).
		AddRow("t-1", "u-1", "deadbeef", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+reset_tokens\s*\(id,\s*user_id,\s*token\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+.*$`
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "u-1", "deadbeef").
		WillReturnRows(tokenRows())

	got, err := repo.Create(context.Background(), "u-1", "deadbeef")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.UserID != "u-1" || got.Token != "deadbeef" {
		t.Fatalf("unexpected token: %+v", got)
	}
}

func TestGetByUserID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*\s+FROM\s+reset_tokens\s+WHERE\s+user_id\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestGetByUserIDAndValue_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*\s+FROM\s+reset_tokens\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+token\s*=\s*\$2\s*$`
	mock.ExpectQuery(q).WithArgs("u-1", "deadbeef").WillReturnRows(tokenRows())

	got, err := repo.GetByUserIDAndValue(context.Background(), "u-1", "deadbeef")
	if err != nil {
		t.Fatalf("GetByUserIDAndValue error: %v", err)
	}
	if got.ID != "t-1" {
		t.Fatalf("unexpected token: %+v", got)
	}
}

func TestGetByUserIDAndValue_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*\s+FROM\s+reset_tokens\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+token\s*=\s*\$2\s*$`
	mock.ExpectQuery(q).WithArgs("u-1", "deadbeef").WillReturnError(errors.New("db down"))

	_, err := repo.GetByUserIDAndValue(context.Background(), "u-1", "deadbeef")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+reset_tokens\s+WHERE\s+user_id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
