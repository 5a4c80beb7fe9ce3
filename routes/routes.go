package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/AlvinDakz/budgetease-api/handlers"
	"github.com/AlvinDakz/budgetease-api/repository"
)

// SetupUserRoutes sets up user CRUD and lookup routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{Users: repository.NewUserRepository(db)}

	rg.POST("/users", userHandler.CreateUser)
	rg.GET("/users/:user_id", userHandler.GetUser)
	rg.PUT("/users/:user_id", userHandler.UpdateUser)
	rg.DELETE("/users/:user_id", userHandler.DeleteUser)
	rg.GET("/users/email/:email", userHandler.ListUsersByEmail)
}

// SetupTransactionRoutes sets up transaction recording and query routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB) {
	txHandler := &handlers.TransactionHandler{Transactions: repository.NewTransactionRepository(db)}

	rg.POST("/transactions", txHandler.CreateTransaction)
	rg.GET("/transactions/date", txHandler.ListByDateRange)
	rg.GET("/transactions/category/:category", txHandler.ListByCategory)
	rg.GET("/transactions/user/:user_id", txHandler.ListByUser)
	rg.GET("/transactions/total_spent/:user_id", txHandler.TotalSpent)
	rg.GET("/transactions/count", txHandler.Count)
}

// SetupBudgetRoutes sets up budget routes, wiring mutations to the
// WebSocket hub.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB, wsHandler *handlers.WSHandler) {
	budgetHandler := &handlers.BudgetHandler{
		Budgets: repository.NewBudgetRepository(db),
		WS:      wsHandler,
	}

	rg.POST("/budgets", budgetHandler.CreateBudget)
	rg.GET("/budgets/:budget_id", budgetHandler.GetBudget)
	rg.GET("/budgets/category/:category", budgetHandler.ListByCategory)
	rg.GET("/budgets/user/:user_id", budgetHandler.ListByUser)
	rg.GET("/budgets/total/:user_id", budgetHandler.TotalBudget)
	rg.PUT("/budgets/extend/:budget_id", budgetHandler.ExtendBudget)
	rg.GET("/budgets/exceeded/:budget_id", budgetHandler.CheckExceeded)
}

// SetupAnalyticsRoutes sets up the aggregate reporting routes.
func SetupAnalyticsRoutes(rg *gin.RouterGroup, db *sql.DB) {
	analyticsHandler := &handlers.AnalyticsHandler{
		Analytics: repository.NewAnalyticsRepository(db),
		Budgets:   repository.NewBudgetRepository(db),
	}

	rg.GET("/analytics/spending/category/:category", analyticsHandler.SpendingByCategory)
	rg.GET("/analytics/transactions/category/:category", analyticsHandler.TransactionCountByCategory)
	rg.GET("/analytics/budget/utilization/:budget_id", analyticsHandler.BudgetUtilization)
	rg.GET("/analytics/spending/monthly/:user_id", analyticsHandler.MonthlySpending)
	rg.GET("/analytics/spending/highest", analyticsHandler.HighestSpendingCategory)
}
