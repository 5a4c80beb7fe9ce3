package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/AlvinDakz/budgetease-api/models"
)

type UserRepoTestSuite struct {
	suite.Suite
	db    *sql.DB
	users *UserRepository
	ctx   context.Context
}

func (suite *UserRepoTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.users = NewUserRepository(suite.db)
	suite.ctx = context.Background()
}

func (suite *UserRepoTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *UserRepoTestSuite) TestCreateAndGet() {
	created, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)
	assert.NotZero(suite.T(), created.ID)

	fetched, err := suite.users.GetByID(suite.ctx, created.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Alice", fetched.Name)
	assert.Equal(suite.T(), "alice@example.com", fetched.Email)
}

func (suite *UserRepoTestSuite) TestGetMissing() {
	_, err := suite.users.GetByID(suite.ctx, 9999)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *UserRepoTestSuite) TestDuplicateEmail() {
	_, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)

	_, err = suite.users.Create(suite.ctx, "Alice Again", "alice@example.com")
	assert.ErrorIs(suite.T(), err, ErrConstraintViolation)
}

func (suite *UserRepoTestSuite) TestPartialUpdate() {
	created, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)

	newName := "Alicia"
	updated, err := suite.users.Update(suite.ctx, created.ID, models.UpdateUserRequest{Name: &newName})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Alicia", updated.Name)
	assert.Equal(suite.T(), "alice@example.com", updated.Email, "unset fields must stay untouched")
}

func (suite *UserRepoTestSuite) TestUpdateMissing() {
	newName := "Nobody"
	_, err := suite.users.Update(suite.ctx, 9999, models.UpdateUserRequest{Name: &newName})
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *UserRepoTestSuite) TestDeleteThenGet() {
	created, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.users.Delete(suite.ctx, created.ID))

	_, err = suite.users.GetByID(suite.ctx, created.ID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *UserRepoTestSuite) TestDeleteMissing() {
	err := suite.users.Delete(suite.ctx, 9999)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *UserRepoTestSuite) TestDeleteDetachesChildren() {
	user, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)

	transactions := NewTransactionRepository(suite.db)
	budgets := NewBudgetRepository(suite.db)

	tx, err := transactions.Create(suite.ctx, models.CreateTransactionRequest{
		Description: "Groceries",
		Amount:      42.50,
		Category:    "food",
		UserID:      &user.ID,
	})
	require.NoError(suite.T(), err)

	budget, err := budgets.Create(suite.ctx, models.CreateBudgetRequest{
		Name:      "Food budget",
		Amount:    200,
		Category:  "food",
		StartDate: time.Now().UTC(),
		EndDate:   time.Now().UTC().AddDate(0, 1, 0),
		UserID:    &user.ID,
	})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.users.Delete(suite.ctx, user.ID))

	// The history rows survive, ownerless.
	keptTx, err := transactions.GetByID(suite.ctx, tx.ID)
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), keptTx.UserID)

	keptBudget, err := budgets.GetByID(suite.ctx, budget.ID)
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), keptBudget.UserID)
}

func (suite *UserRepoTestSuite) TestListByEmail() {
	_, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)
	_, err = suite.users.Create(suite.ctx, "Bob", "bob@example.com")
	require.NoError(suite.T(), err)

	matches, err := suite.users.ListByEmail(suite.ctx, "alice@example.com")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), matches, 1)
	assert.Equal(suite.T(), "Alice", matches[0].Name)

	none, err := suite.users.ListByEmail(suite.ctx, "nobody@example.com")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), none)
}

func TestUserRepoSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}
