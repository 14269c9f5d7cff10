// Package main is the entry point for the Steve's Place order service.
//
// @title           Steve's Place Order API
// @version         1.0.0
// @description     Menu, order validation and pickup scheduling for Steve's Place.
//
//	Orders are priced from the menu, checked against store hours and closures,
//	and accepted only when the claimed price matches the computed one.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Staff API key.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Staff token as "Bearer <token>".
//
// @tag.name        Menu
// @tag.description Menu listing and item pricing
//
// @tag.name        Orders
// @tag.description Order validation and placement
//
// @tag.name        Store
// @tag.description Store closures
//
// @tag.name        Staff
// @tag.description Staff sign-in and store management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/stevesplace/order-service/docs" // swagger docs

	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server, app.WithShutdownHook(application.Close))
	if err := server.Run(); err != nil {
		application.Close()
		log.Fatal().Err(err).Msg("Server error")
	}
}
