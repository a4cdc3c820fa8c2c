// File: cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log" // Standard log for critical startup/shutdown messages before/after zap is active
	"os"
	"os/signal"
	"syscall"

	"dealership_backend/internal/app"
	"dealership_backend/internal/auth"
	"dealership_backend/internal/config"
	"dealership_backend/internal/platform/database"
	"dealership_backend/internal/platform/logger"
	"dealership_backend/internal/user"
	"dealership_backend/internal/validation"

	"go.uber.org/zap"
)

func main() {
	createAdminCmd := flag.NewFlagSet("create-admin", flag.ExitOnError)
	email := createAdminCmd.String("email", "", "Admin email address")
	name := createAdminCmd.String("name", "Administrator", "Admin display name")
	password := createAdminCmd.String("password", "", "Admin password (min 8 characters)")

	if len(os.Args) > 1 && os.Args[1] == "create-admin" {
		_ = createAdminCmd.Parse(os.Args[2:])
		if err := runCreateAdmin(*name, *email, *password); err != nil {
			fmt.Fprintf(os.Stderr, "create-admin: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Default: Start server
	startServer()
}

func runCreateAdmin(name, email, password string) error {
	input, err := auth.ValidateLogin(map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
			}
		}
		return errors.New("invalid admin credentials")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	appLogger, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	conn := database.NewConnector(cfg)
	defer conn.Close()

	ctx := context.Background()
	db, err := conn.Connect(ctx)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db, appLogger, app.Models()...); err != nil {
		return err
	}

	admin, err := user.NewService(user.NewGORMRepository(db), appLogger).CreateAdmin(ctx, name, input.Email, input.Password)
	if err != nil {
		return err
	}
	appLogger.Info("Admin account created", zap.String("userID", admin.ID), zap.String("email", admin.Email))
	return nil
}

func startServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize server: %v", err)
	}
	defer cleanup()

	if err := server.Migrate(); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("FATAL: Server failed to start or crashed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("INFO: Received signal '%s'. Shutting down server...", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server forced to shutdown due to error: %v", err)
	} else {
		log.Println("INFO: Server shutdown complete.")
	}
	log.Println("INFO: Application exiting.")
}
