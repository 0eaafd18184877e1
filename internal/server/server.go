package server

import (
	"net/http"

	"github.com/chainpay/chainpay-api/internal/bridge"
	"github.com/chainpay/chainpay-api/internal/config"
	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/handlers"
	"github.com/chainpay/chainpay-api/internal/middleware"
	"github.com/chainpay/chainpay-api/internal/payroll"
	"github.com/chainpay/chainpay-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies carries everything the router needs. BridgeClient may be nil
// when the bridge is not configured; batch execution then returns 503.
type Dependencies struct {
	Config       *config.Config
	Queries      db.Querier
	BridgeClient bridge.Client
}

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(newCORS(deps.Config))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.NewRateLimiter(deps.Config.RateLimitPerSecond, deps.Config.RateLimitBurst).Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	employeeService := services.NewEmployeeService(deps.Queries)
	transactionService := services.NewTransactionService(deps.Queries)
	batches := payroll.NewStore()

	var executor *bridge.Executor
	if deps.BridgeClient != nil {
		executor = bridge.NewExecutor(deps.Queries, deps.BridgeClient, batches, bridge.ExecutorConfig{
			SourceChainID:  deps.Config.SourceChainID,
			ReceiptTimeout: deps.Config.ReceiptTimeout,
		})
	}

	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	batchHandler := handlers.NewBatchHandler(batches, employeeService, executor)

	v1 := router.Group("/api/v1")
	{
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", transactionHandler.ListTransactions)
			transactions.POST("", transactionHandler.CreateTransaction)
			transactions.GET("/stats", transactionHandler.GetTransactionStats)
			transactions.GET("/:id", transactionHandler.GetTransaction)
			transactions.PUT("/:id", transactionHandler.UpdateTransaction)
		}

		batchGroup := v1.Group("/batches")
		{
			batchGroup.POST("", batchHandler.CreateBatch)
			batchGroup.GET("/:batch_id", batchHandler.GetBatch)
			batchGroup.GET("/:batch_id/template", batchHandler.GetTemplate)
			batchGroup.POST("/:batch_id/beneficiaries", batchHandler.AddBeneficiary)
			batchGroup.DELETE("/:batch_id/beneficiaries/:index", batchHandler.RemoveBeneficiary)
			batchGroup.POST("/:batch_id/employees", batchHandler.AddAllEmployees)
			batchGroup.POST("/:batch_id/import", batchHandler.ImportCSV)
			batchGroup.POST("/:batch_id/execute", batchHandler.ExecuteBatch)
		}
	}

	return router
}

func newCORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if cfg.Stage == "prod" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}
	return cors.New(corsConfig)
}
