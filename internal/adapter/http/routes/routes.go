package routes

import (
	"log"
	"os"
	"strconv"

	_ "freelance_ledger/docs" // This will be auto-generated
	"freelance_ledger/internal/adapter/http/handlers"
	"freelance_ledger/internal/adapter/http/middleware"
	repository2 "freelance_ledger/internal/adapter/persistence/repository"
	"freelance_ledger/internal/infrastructure/database"
	"freelance_ledger/internal/infrastructure/payments"
	"freelance_ledger/internal/usecase"
	"freelance_ledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	ledgerRepo := repository2.NewLedgerDynamoRepository(ddb)

	var depositGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured, deposits credit directly: %v", err)
	} else {
		depositGateway = mpGateway
	}

	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, profileRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, contractRepo)
	paymentUseCase := usecase.NewPaymentUseCase(jobRepo, contractRepo, profileRepo, ledgerRepo)
	depositUseCase := usecase.NewDepositUseCase(profileRepo, contractRepo, jobRepo, ledgerRepo, depositGateway)
	reportUseCase := usecase.NewReportUseCase(jobRepo, contractRepo, profileRepo)

	profileHandler := handlers.NewProfileHandler(profileUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase, paymentUseCase)
	balanceHandler := handlers.NewBalanceHandler(depositUseCase)
	adminHandler := handlers.NewAdminHandler(reportUseCase)

	profileLoader := middleware.ProfileLoader(profileUseCase)

	root := router.Group("")
	addPingRoutes(root)
	addLedgerRoutes(root, profileLoader, profileHandler, contractHandler, jobHandler, balanceHandler, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
