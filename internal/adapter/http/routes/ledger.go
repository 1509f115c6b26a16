package routes

import (
	"freelance_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProfiles  = "/profiles"
	PathContracts = "/contracts"
	PathJobs      = "/jobs"
	PathBalances  = "/balances"
	PathAdmin     = "/admin"
)

func addLedgerRoutes(
	rg *gin.RouterGroup,
	profileLoader gin.HandlerFunc,
	profileHandler *handlers.ProfileHandler,
	contractHandler *handlers.ContractHandler,
	jobHandler *handlers.JobHandler,
	balanceHandler *handlers.BalanceHandler,
	adminHandler *handlers.AdminHandler,
) {
	profiles := rg.Group(PathProfiles)
	{
		profiles.POST("", profileHandler.CreateProfile)
		profiles.GET("/:id", profileHandler.GetProfileByID)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", profileLoader, contractHandler.ListContracts)
		contracts.GET("/:id", profileLoader, contractHandler.GetContractByID)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/unpaid", profileLoader, jobHandler.ListUnpaidJobs)
		jobs.POST("/:job_id/pay", profileLoader, jobHandler.PayJob)
	}

	balances := rg.Group(PathBalances)
	{
		balances.POST("/deposit/:userId", profileLoader, balanceHandler.Deposit)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.GET("/best-profession", adminHandler.BestProfession)
		admin.GET("/best-clients", adminHandler.BestClients)
	}
}
