package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // встраиваемый SQL-движок для тестов, без cgo
)

// Схема тестовой базы повторяет migrations/001_init.sql в диалекте SQLite.
const testSchema = `
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    riding_experience TEXT NOT NULL DEFAULT '',
    bike_type TEXT NOT NULL DEFAULT ''
);

CREATE TABLE trips (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    departure_place TEXT NOT NULL,
    arrival_place TEXT NOT NULL,
    departure_date TEXT NOT NULL,
    rider_id INTEGER NOT NULL,
    max_seats INTEGER NOT NULL CHECK (max_seats >= 1)
);

CREATE TABLE trip_requests (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER NOT NULL,
    user_id INTEGER NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
    requested_at TIMESTAMP NOT NULL
);
`

func init() {
	// запросы репозиториев написаны с плейсхолдерами $n
	sqlx.BindDriver("sqlite", sqlx.DOLLAR)
}

// newTestDB открывает чистую базу во временном каталоге теста.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("открытие тестовой базы: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("создание схемы: %v", err)
	}
	return db
}
