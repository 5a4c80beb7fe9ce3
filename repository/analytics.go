package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AlvinDakz/budgetease-api/models"
)

// AnalyticsRepository answers the cross-entity aggregate queries.
type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// SpendingByCategory sums transaction amounts in a category across all
// users, 0 when the category has no transactions.
func (r *AnalyticsRepository) SpendingByCategory(ctx context.Context, category string) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE category = ?
	`, category).Scan(&total)
	return total, err
}

func (r *AnalyticsRepository) TransactionCountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM transactions
		WHERE category = ?
	`, category).Scan(&count)
	return count, err
}

// MonthlySpending sums the user's transactions for the current calendar
// month: first of the month inclusive to first of the next month exclusive.
func (r *AnalyticsRepository) MonthlySpending(ctx context.Context, userID int64) (float64, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ? AND date >= ? AND date < ?
	`, userID, start, end).Scan(&total)
	return total, err
}

// HighestSpendingCategory returns the category with the largest summed
// amount. Ties break on category name ascending so the result is stable
// across engines. With zero transactions there is no category to report and
// the call yields ErrNotFound.
func (r *AnalyticsRepository) HighestSpendingCategory(ctx context.Context) (*models.CategorySpend, error) {
	var result models.CategorySpend
	err := r.db.QueryRowContext(ctx, `
		SELECT category, SUM(amount) AS total_spent
		FROM transactions
		GROUP BY category
		ORDER BY total_spent DESC, category ASC
		LIMIT 1
	`).Scan(&result.Category, &result.TotalSpent)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
