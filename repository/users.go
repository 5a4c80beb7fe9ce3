package repository

import (
	"context"
	"database/sql"

	"github.com/AlvinDakz/budgetease-api/models"
	"github.com/AlvinDakz/budgetease-api/utils"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Email uniqueness is enforced by the storage
// constraint; a duplicate surfaces as ErrConstraintViolation.
func (r *UserRepository) Create(ctx context.Context, name, email string) (*models.User, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email)
		VALUES (?, ?)
	`, name, email)
	if err != nil {
		return nil, mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email
		FROM users
		WHERE id = ?
	`, id).Scan(&user.ID, &user.Name, &user.Email)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies only the fields present in the request and returns the
// resulting row. A missing id yields ErrNotFound.
func (r *UserRepository) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = COALESCE(?, name), email = COALESCE(?, email)
		WHERE id = ?
	`, req.Name, req.Email, id)
	if err != nil {
		return nil, mapError(err)
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

// Delete removes the user. Child transactions and budgets are detached (their
// user_id set to NULL) in the same transaction rather than deleted: the
// financial history outlives the account.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return utils.WithTransaction(r.db, func(tx *sql.Tx) error {
		// Detach before the delete so the foreign keys never dangle.
		if _, err := tx.ExecContext(ctx, `UPDATE transactions SET user_id = NULL WHERE user_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE budgets SET user_id = NULL WHERE user_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
		if err != nil {
			return mapError(err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ListByEmail returns every user with exactly this email. The unique
// constraint makes this 0 or 1 rows in practice.
func (r *UserRepository) ListByEmail(ctx context.Context, email string) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email
		FROM users
		WHERE email = ?
		ORDER BY id
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
