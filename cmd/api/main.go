package main

import (
	_ "freelance_ledger/docs"
	"freelance_ledger/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Freelance Ledger API
// @version         1.0
// @description     Freelance marketplace ledger (profiles, contracts, jobs and balances) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey ProfileID
// @in header
// @name profile_id
// @description Id of the calling profile.

func main() {
	routes.Run()
}
