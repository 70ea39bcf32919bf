package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/webstore/internal/config"
	"github.com/Skotchmaster/webstore/internal/httpserver"
	"github.com/Skotchmaster/webstore/internal/logging"
	"github.com/Skotchmaster/webstore/internal/middleware/basicauth"
	"github.com/Skotchmaster/webstore/internal/middleware/loggingmw"
	"github.com/Skotchmaster/webstore/internal/repo"
	"github.com/Skotchmaster/webstore/internal/service"
)

// @title Webstore API
// @version 1.0
// @description CRUD service for products and users.
// @BasePath /api/v1
// @securityDefinitions.basic BasicAuth
func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL).With("service", "webstore")
	slog.SetDefault(logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}

	store := basicauth.NewMemoryStore()
	if err := store.Add(configuration.USER_USERNAME, configuration.USER_PASSWORD, basicauth.RoleUser); err != nil {
		log.Fatalf("credential store: %v", err)
	}
	if err := store.Add(configuration.ADMIN_USERNAME, configuration.ADMIN_PASSWORD, basicauth.RoleUser, basicauth.RoleAdmin); err != nil {
		log.Fatalf("credential store: %v", err)
	}

	gormRepo := repo.NewGormRepo(db)

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: gormRepo}},
		UserHandler:    &httpserver.UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		AdminHandler:   &httpserver.AdminHTTP{Repo: gormRepo},
		Credentials:    store,
	})

	srv := &http.Server{
		Addr:              configuration.HTTP_ADDR,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("webstore listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("shutdown complete")
}
