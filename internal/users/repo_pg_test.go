package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertExecutesInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("user-1", "ada@example.com", "Ada Lovelace", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Upsert(context.Background(), User{
		ID:           "user-1",
		Email:        "ada@example.com",
		FullName:     "Ada Lovelace",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByEmailScansRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "password_hash", "created_at", "updated_at"}).
		AddRow("user-1", "ada@example.com", nil, "hash", created, nil)

	mock.ExpectQuery(`SELECT[\s\S]+FROM users`).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	user, err := repo.GetByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.ID != "user-1" || user.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.FullName != "" {
		t.Fatalf("expected empty full name for null column")
	}
	if user.UpdatedAt.IsZero() {
		t.Fatalf("expected UpdatedAt fallback when column is null")
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT[\s\S]+FROM users`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
