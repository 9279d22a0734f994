package main

import (
	"context"
	"net/http"
	"os"

	pricingapp "github.com/scrapzee/scrapzee-cli/application/pricing"
	profileapp "github.com/scrapzee/scrapzee-cli/application/profile"
	requestsapp "github.com/scrapzee/scrapzee-cli/application/requests"
	sessionapp "github.com/scrapzee/scrapzee-cli/application/session"
	"github.com/scrapzee/scrapzee-cli/cmd/config"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
	"github.com/scrapzee/scrapzee-cli/repository/tokenstore"
	"github.com/scrapzee/scrapzee-cli/transport/cli"
	"github.com/scrapzee/scrapzee-cli/utils/logger"
	validatorx "github.com/scrapzee/scrapzee-cli/utils/validator"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Close()
	}()

	validatorx.Init()

	// Wire repositories
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	gateway := backend.NewHTTPGateway(cfg.API.BaseURL, httpClient, cfg.API.RateLimit, cfg.API.RateBurst)
	store := tokenstore.NewFileStore(cfg.Token.File)

	// Wire application layers
	controller := sessionapp.NewController(gateway, store)

	app := &cli.App{
		Config:     cfg,
		Controller: controller,
		Requests:   requestsapp.NewRequestsApp(gateway, controller),
		Profile:    profileapp.NewProfileApp(gateway, controller),
		Pricing:    pricingapp.NewPricingApp(gateway),
	}

	root := cli.NewRootCommand(app)
	if err := root.ExecuteContext(context.Background()); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
