package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartpurse/pos-terminal/internal/application/service"
	"github.com/smartpurse/pos-terminal/internal/config"
	"github.com/smartpurse/pos-terminal/internal/infrastructure/api"
	"github.com/smartpurse/pos-terminal/internal/presentation/terminal"
	"github.com/smartpurse/pos-terminal/pkg/billno"
	"github.com/smartpurse/pos-terminal/pkg/logger"
	"github.com/smartpurse/pos-terminal/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize receipt printer
	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: %v, continuing without a printer", err)
		receiptPrinter = printer.NewNullPrinter()
	}
	defer receiptPrinter.Close()

	// Initialize backend client and endpoint repositories
	client := api.NewClient(&cfg.API)
	authRepo := api.NewAuthAPI(client)
	saleRepo := api.NewSaleAPI(client)
	inventoryRepo := api.NewInventoryAPI(client)
	categoryRepo := api.NewCategoryAPI(client)
	userRepo := api.NewUserAPI(client)
	storeRepo := api.NewStoreAPI(client)

	// Initialize services
	cartSvc := service.NewCartService(billno.NewDefaultGenerator())
	services := terminal.Services{
		Auth:       service.NewAuthService(authRepo, logger.New("auth")),
		Cart:       cartSvc,
		Billing:    service.NewBillingService(saleRepo, cartSvc, logger.New("billing")),
		Catalog:    service.NewCatalogService(inventoryRepo),
		Categories: service.NewCategoryService(categoryRepo),
		Users:      service.NewUserService(userRepo),
		Printer:    service.NewPrinterService(receiptPrinter, storeRepo, cfg.Printer.Width, logger.New("printer")),
		Stores:     storeRepo,
	}

	// Ctrl-C ends the session cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(services, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("Terminal exited with error: %v", err)
	}
}
