package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shoplite/shoplite-backend/internal/backup"
	"github.com/shoplite/shoplite-backend/internal/config"
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
	fmt.Println("Successfully connected to the database!")

	userSink := backup.NewCSVSink(cfg.UserBackupFile)
	productSink := backup.NewCSVSink(cfg.ProductBackupFile)
	salesSink := backup.NewCSVSink(cfg.SalesBackupFile)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	userRepo := user.NewPostgresRepository(conn)
	userService := user.NewService(userRepo, userSink)
	if err := userService.EnsureAdmin(ctx, cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword); err != nil {
		log.Fatal(err)
	}

	authService := auth.NewService(userRepo, []byte(cfg.JWTSecret))
	auth.NewHandler(authService).RegisterRoutes(router)

	mw := auth.NewMiddleware([]byte(cfg.JWTSecret))
	adminOnly := mw.RequireRoles(user.RoleAdmin)
	anyRole := mw.RequireRoles(user.RoleAdmin, user.RoleShopkeeper, user.RoleClient)
	shopkeeperOnly := mw.RequireRoles(user.RoleShopkeeper)

	user.NewHandler(userService).RegisterRoutes(router, adminOnly)

	catalogRepo := catalog.NewPostgresRepository(conn)
	catalogService := catalog.NewService(catalogRepo, productSink)
	catalog.NewHandler(catalogService).RegisterRoutes(router, anyRole, adminOnly)

	billingRepo := billing.NewPostgresRepository(conn)
	billingService := billing.NewService(billingRepo, salesSink, catalogService)
	billing.NewHandler(billingService).RegisterRoutes(router, shopkeeperOnly, adminOnly)

	fmt.Printf("Shoplite API server starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
