package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AlvinDakz/budgetease-api/models"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create records a transaction. The date defaults to now when omitted; the
// amount is stored as given, sign included. Times are normalized to UTC so
// range comparisons against stored values stay consistent.
func (r *TransactionRepository) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (description, amount, date, category, user_id)
		VALUES (?, ?, ?, ?, ?)
	`, req.Description, req.Amount, date, req.Category, req.UserID)
	if err != nil {
		return nil, mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, description, amount, date, category, user_id
		FROM transactions
		WHERE id = ?
	`, id)

	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ListByDateRange returns transactions for all users with a date in
// [start, end], inclusive on both ends.
func (r *TransactionRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	return r.list(ctx, `
		SELECT id, description, amount, date, category, user_id
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date, id
	`, start.UTC(), end.UTC())
}

func (r *TransactionRepository) ListByCategory(ctx context.Context, category string) ([]models.Transaction, error) {
	return r.list(ctx, `
		SELECT id, description, amount, date, category, user_id
		FROM transactions
		WHERE category = ?
		ORDER BY date, id
	`, category)
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return r.list(ctx, `
		SELECT id, description, amount, date, category, user_id
		FROM transactions
		WHERE user_id = ?
		ORDER BY date, id
	`, userID)
}

// TotalSpentByUser sums the user's transaction amounts. A user with no
// transactions totals 0, not NULL.
func (r *TransactionRepository) TotalSpentByUser(ctx context.Context, userID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ?
	`, userID).Scan(&total)
	return total, err
}

// Count returns the global transaction row count.
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}

func (r *TransactionRepository) list(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var tx models.Transaction
	var userID sql.NullInt64
	if err := row.Scan(&tx.ID, &tx.Description, &tx.Amount, &tx.Date, &tx.Category, &userID); err != nil {
		return nil, err
	}
	if userID.Valid {
		tx.UserID = &userID.Int64
	}
	return &tx, nil
}
