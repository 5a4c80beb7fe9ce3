package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AlvinDakz/budgetease-api/models"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Create inserts a budget. The window is stored as given; end may precede
// start, matching the write path's lack of validity checks.
func (r *BudgetRepository) Create(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (name, amount, category, start_date, end_date, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.Name, req.Amount, req.Category, req.StartDate.UTC(), req.EndDate.UTC(), req.UserID)
	if err != nil {
		return nil, mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *BudgetRepository) GetByID(ctx context.Context, id int64) (*models.Budget, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, amount, category, start_date, end_date, user_id
		FROM budgets
		WHERE id = ?
	`, id)

	budget, err := scanBudget(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func (r *BudgetRepository) ListByCategory(ctx context.Context, category string) ([]models.Budget, error) {
	return r.list(ctx, `
		SELECT id, name, amount, category, start_date, end_date, user_id
		FROM budgets
		WHERE category = ?
		ORDER BY id
	`, category)
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID int64) ([]models.Budget, error) {
	return r.list(ctx, `
		SELECT id, name, amount, category, start_date, end_date, user_id
		FROM budgets
		WHERE user_id = ?
		ORDER BY id
	`, userID)
}

// TotalByUser sums the user's budget amounts, 0 when there are none.
func (r *BudgetRepository) TotalByUser(ctx context.Context, userID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM budgets
		WHERE user_id = ?
	`, userID).Scan(&total)
	return total, err
}

// ExtendEndDate overwrites the budget's end date unconditionally; the new
// date is not required to follow the start or the current end. A missing id
// yields ErrNotFound and no mutation.
func (r *BudgetRepository) ExtendEndDate(ctx context.Context, id int64, newEndDate time.Time) (*models.Budget, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE budgets
		SET end_date = ?
		WHERE id = ?
	`, newEndDate.UTC(), id)
	if err != nil {
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// IsExceeded reports whether the budget owner's all-time spend in the
// budget's category strictly exceeds the budget amount. Note the sum is not
// bounded by the budget's start/end window; that mirrors the recorded
// behavior of this system.
func (r *BudgetRepository) IsExceeded(ctx context.Context, id int64) (bool, error) {
	budget, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	spent, err := r.spentAgainst(ctx, budget)
	if err != nil {
		return false, err
	}
	return spent > budget.Amount, nil
}

// UtilizationRatio returns spent/amount, or exactly 0 for a zero or negative
// budget amount.
func (r *BudgetRepository) UtilizationRatio(ctx context.Context, id int64) (float64, error) {
	budget, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if budget.Amount <= 0 {
		return 0, nil
	}

	spent, err := r.spentAgainst(ctx, budget)
	if err != nil {
		return 0, err
	}
	return spent / budget.Amount, nil
}

// spentAgainst totals the transactions sharing the budget's owner and
// category, 0 when there are none. An ownerless budget matches ownerless
// transactions.
func (r *BudgetRepository) spentAgainst(ctx context.Context, budget *models.Budget) (float64, error) {
	var total float64
	var err error
	if budget.UserID != nil {
		err = r.db.QueryRowContext(ctx, `
			SELECT COALESCE(SUM(amount), 0)
			FROM transactions
			WHERE user_id = ? AND category = ?
		`, *budget.UserID, budget.Category).Scan(&total)
	} else {
		err = r.db.QueryRowContext(ctx, `
			SELECT COALESCE(SUM(amount), 0)
			FROM transactions
			WHERE user_id IS NULL AND category = ?
		`, budget.Category).Scan(&total)
	}
	return total, err
}

func (r *BudgetRepository) list(ctx context.Context, query string, args ...any) ([]models.Budget, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *budget)
	}
	return budgets, rows.Err()
}

func scanBudget(row rowScanner) (*models.Budget, error) {
	var budget models.Budget
	var userID sql.NullInt64
	if err := row.Scan(&budget.ID, &budget.Name, &budget.Amount, &budget.Category,
		&budget.StartDate, &budget.EndDate, &userID); err != nil {
		return nil, err
	}
	if userID.Valid {
		budget.UserID = &userID.Int64
	}
	return &budget, nil
}
