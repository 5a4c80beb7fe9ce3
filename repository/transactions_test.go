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

type TransactionRepoTestSuite struct {
	suite.Suite
	db           *sql.DB
	users        *UserRepository
	transactions *TransactionRepository
	ctx          context.Context
}

func (suite *TransactionRepoTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.users = NewUserRepository(suite.db)
	suite.transactions = NewTransactionRepository(suite.db)
	suite.ctx = context.Background()
}

func (suite *TransactionRepoTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *TransactionRepoTestSuite) record(desc string, amount float64, category string, date time.Time, userID *int64) *models.Transaction {
	req := models.CreateTransactionRequest{
		Description: desc,
		Amount:      amount,
		Category:    category,
		UserID:      userID,
	}
	if !date.IsZero() {
		req.Date = &date
	}

	tx, err := suite.transactions.Create(suite.ctx, req)
	require.NoError(suite.T(), err, "failed to record transaction: %s", desc)
	return tx
}

func (suite *TransactionRepoTestSuite) TestCreateDefaultsDate() {
	tx := suite.record("Coffee", 3.50, "food", time.Time{}, nil)

	assert.WithinDuration(suite.T(), time.Now().UTC(), tx.Date, 5*time.Second,
		"omitted date should default to creation time")
	assert.Nil(suite.T(), tx.UserID)
}

func (suite *TransactionRepoTestSuite) TestCreateWithUnknownUser() {
	ghost := int64(9999)
	_, err := suite.transactions.Create(suite.ctx, models.CreateTransactionRequest{
		Description: "Orphan",
		Amount:      1,
		Category:    "misc",
		UserID:      &ghost,
	})
	assert.ErrorIs(suite.T(), err, ErrConstraintViolation)
}

func (suite *TransactionRepoTestSuite) TestListByDateRangeInclusive() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.record("On start", 10, "misc", start, nil)
	suite.record("Mid range", 20, "misc", start.AddDate(0, 0, 10), nil)
	suite.record("On end", 30, "misc", end, nil)
	suite.record("Before", 40, "misc", start.Add(-time.Second), nil)
	suite.record("After", 50, "misc", end.Add(time.Second), nil)

	got, err := suite.transactions.ListByDateRange(suite.ctx, start, end)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), got, 3, "both endpoints are inclusive")
	assert.Equal(suite.T(), "On start", got[0].Description)
	assert.Equal(suite.T(), "On end", got[2].Description)
}

func (suite *TransactionRepoTestSuite) TestTotalSpentNoTransactions() {
	user, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)

	total, err := suite.transactions.TotalSpentByUser(suite.ctx, user.ID)
	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), total, "sum over zero rows must be 0, not an error")
}

func (suite *TransactionRepoTestSuite) TestUserSpendingScenario() {
	user, err := suite.users.Create(suite.ctx, "Alice", "alice@example.com")
	require.NoError(suite.T(), err)

	now := time.Now().UTC()
	suite.record("Lunch", 10, "food", now, &user.ID)
	suite.record("Dinner", 20, "food", now, &user.ID)
	suite.record("Cinema", 5, "fun", now, &user.ID)

	total, err := suite.transactions.TotalSpentByUser(suite.ctx, user.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 35.0, total)

	food, err := suite.transactions.ListByCategory(suite.ctx, "food")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), food, 2)
	for _, tx := range food {
		assert.Equal(suite.T(), "food", tx.Category)
	}

	mine, err := suite.transactions.ListByUser(suite.ctx, user.ID)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), mine, 3)
}

func (suite *TransactionRepoTestSuite) TestCount() {
	count, err := suite.transactions.Count(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), count)

	suite.record("One", 1, "misc", time.Time{}, nil)
	suite.record("Two", 2, "misc", time.Time{}, nil)

	count, err = suite.transactions.Count(suite.ctx)
	require.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 2, count)
}

func TestTransactionRepoSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepoTestSuite))
}
