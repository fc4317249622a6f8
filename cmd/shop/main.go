package main

import (
	"context"
	"log"
	"os"

	"github.com/shoplite/shoplite-backend/internal/backup"
	"github.com/shoplite/shoplite-backend/internal/config"
	"github.com/shoplite/shoplite-backend/internal/console"
	"github.com/shoplite/shoplite-backend/internal/db"
	"github.com/shoplite/shoplite-backend/internal/modules/auth"
	"github.com/shoplite/shoplite-backend/internal/modules/billing"
	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
	"github.com/shoplite/shoplite-backend/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx, conn); err != nil {
		log.Fatal(err)
	}

	userSink := backup.NewCSVSink(cfg.UserBackupFile)
	productSink := backup.NewCSVSink(cfg.ProductBackupFile)
	salesSink := backup.NewCSVSink(cfg.SalesBackupFile)

	userRepo := user.NewPostgresRepository(conn)
	userService := user.NewService(userRepo, userSink)
	if err := userService.EnsureAdmin(ctx, cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword); err != nil {
		log.Fatal(err)
	}

	authService := auth.NewService(userRepo, []byte(cfg.JWTSecret))

	catalogRepo := catalog.NewPostgresRepository(conn)
	catalogService := catalog.NewService(catalogRepo, productSink)

	billingRepo := billing.NewPostgresRepository(conn)
	billingService := billing.NewService(billingRepo, salesSink, catalogService)

	controller := console.NewController(os.Stdin, os.Stdout, authService, userService, catalogService, billingService)
	if err := controller.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
