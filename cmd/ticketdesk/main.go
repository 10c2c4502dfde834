package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ticketdesk/internal/catalog"
	catalogapi "ticketdesk/internal/catalog/api"
	catalogdb "ticketdesk/internal/catalog/db"
	"ticketdesk/internal/config"
	"ticketdesk/internal/customer"
	customerapi "ticketdesk/internal/customer/api"
	customerdb "ticketdesk/internal/customer/db"
	"ticketdesk/internal/database/migrations"
	"ticketdesk/internal/logger"
	"ticketdesk/internal/order"
	orderapi "ticketdesk/internal/order/api"
	orderdb "ticketdesk/internal/order/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Close()

	ctx := context.Background()

	// --- SQLite Setup ---
	sqldb, err := sql.Open("sqlite", cfg.Database.DSN())
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open SQLite database: %v", err))
	}
	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	if err := bunDB.Ping(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to SQLite: %v", err))
	}
	log.Info("DATABASE", fmt.Sprintf("Connected to SQLite database at %s", cfg.Database.Path))

	if err := migrations.Run(ctx, bunDB); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Migration failed: %v", err))
	}

	// --- Initialize Dependencies ---
	customerService := customer.NewService(&customerdb.DB{Bun: bunDB})
	catalogService := catalog.NewService(&catalogdb.DB{Bun: bunDB})
	orderService := order.NewService(&orderdb.DB{Bun: bunDB}, log)

	customerHandler := &customerapi.Handler{Service: customerService, Logger: log}
	catalogHandler := &catalogapi.Handler{Service: catalogService, Logger: log}
	orderHandler := &orderapi.Handler{Service: orderService, Logger: log}

	// --- Setup Router ---
	r := chi.NewRouter()

	r.Post("/customers", customerHandler.RegisterCustomer)
	r.Get("/customers", customerHandler.ListCustomers)
	r.Get("/event-types", catalogHandler.ListEventTypes)
	r.Get("/events", catalogHandler.ListEvents)
	r.Post("/orders", orderHandler.PlaceOrder)

	// Browsing UI, if a static dir is present.
	if _, err := os.Stat(cfg.Static.Dir); err == nil {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Static.Dir)))
		log.Info("SERVER", fmt.Sprintf("Serving static files from %s", cfg.Static.Dir))
	}

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("SERVER", fmt.Sprintf("ticketdesk running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("SERVER", "Shutdown signal received. Cleaning up...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("SERVER", fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	// The process only exits once the store handle reports closed.
	if err := bunDB.Close(); err != nil {
		log.Error("DATABASE", fmt.Sprintf("Failed to close database: %v", err))
	} else {
		log.Info("DATABASE", "Database handle closed")
	}

	log.Info("SERVER", "Server exited")
}
