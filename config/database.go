package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// InitDB opens the sqlite database named by DATABASE_PATH (defaulting to a
// local file next to the binary) and prepares it for use.
func InitDB() (*sql.DB, error) {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "./budgetease.db"
	}
	return OpenDB(path)
}

// OpenDB opens a sqlite database at the given path. Tests pass ":memory:".
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer; a one-connection pool also keeps the
	// foreign_keys pragma (and :memory: databases) pinned to one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			amount REAL NOT NULL,
			date DATETIME DEFAULT CURRENT_TIMESTAMP,
			category TEXT NOT NULL,
			user_id INTEGER REFERENCES users(id)
		)`,

		`CREATE TABLE IF NOT EXISTS budgets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			amount REAL NOT NULL,
			category TEXT NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			user_id INTEGER REFERENCES users(id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_users_name ON users(name)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_description ON transactions(description)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_category ON budgets(category)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
