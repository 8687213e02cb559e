package wills

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lasttx/willkeeper/internal/common"
	"github.com/lasttx/willkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db, nil), mock, db
}

func testWill() *models.Will {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Will{
		ID:                 "w1",
		Owner:              "0x1111111111111111111111111111111111111111",
		Beneficiaries:      []models.Beneficiary{{Address: "0x2222222222222222222222222222222222222222", Percentage: 100}},
		InactivityDuration: time.Minute,
		LastActivity:       now,
		Status:             models.StatusActive,
		ScheduleToken:      "tok-1",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO wills`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), testWill()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO wills`).
		WillReturnError(errors.New("db is down"))

	err := repo.Create(context.Background(), testWill())
	if !errors.Is(err, common.ErrStore) {
		t.Fatalf("want ErrStore, got %v", err)
	}
}

func TestGet_DBErrorIsStoreError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM wills WHERE id`).
		WithArgs("w1").
		WillReturnError(errors.New("db is down"))

	_, err := repo.Get(context.Background(), "w1")
	if !errors.Is(err, common.ErrStore) {
		t.Fatalf("want ErrStore, got %v", err)
	}
	if errors.Is(err, common.ErrNotFound) {
		t.Fatalf("outage must not masquerade as not-found: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM wills WHERE id`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateIfStatus_SuccessRowsAffected1(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE wills SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateIfStatus(context.Background(), models.StatusActive, testWill()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateIfStatus_ConflictWhenRowExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE wills SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.UpdateIfStatus(context.Background(), models.StatusActive, testWill())
	if !errors.Is(err, common.ErrStatusConflict) {
		t.Fatalf("want ErrStatusConflict, got %v", err)
	}
}

func TestUpdateIfStatus_NotFoundWhenRowAbsent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE wills SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.UpdateIfStatus(context.Background(), models.StatusActive, testWill())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateIfStatus_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE wills SET`).
		WillReturnError(errors.New("db is down"))

	err := repo.UpdateIfStatus(context.Background(), models.StatusActive, testWill())
	if !errors.Is(err, common.ErrStore) {
		t.Fatalf("want ErrStore, got %v", err)
	}
	if errors.Is(err, common.ErrStatusConflict) {
		t.Fatalf("outage must not masquerade as a status conflict: %v", err)
	}
}

func TestHardDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM wills WHERE id`).
		WithArgs("w1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.HardDelete(context.Background(), "w1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
