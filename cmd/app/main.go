package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospitalfood/cmd"
	apihttp "hospitalfood/internal/adapters/in/http"
	"hospitalfood/internal/adapters/out/postgres"
	"hospitalfood/internal/adapters/out/postgres/migrations"
	"hospitalfood/internal/adapters/out/rabbitmq"
	rediscache "hospitalfood/internal/adapters/out/redis"
	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	l, err := logger.New(logger.Options{Level: config.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, l); err != nil {
		l.Error("food-service API stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, config cmd.Config, l *zap.Logger) error {
	dsn := postgres.Options{
		Host:     config.DBHost,
		Port:     config.DBPort,
		User:     config.DBUser,
		Password: config.DBPassword,
		Name:     config.DBName,
		SSLMode:  config.DBSslMode,
	}.DSN()

	if err := migrations.Up(ctx, dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	gormDB, err := postgres.Open(dsn, l)
	if err != nil {
		return err
	}

	redisClient, err := rediscache.Connect(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	rabbitConn, err := rabbitmq.Dial(config.RabbitURL)
	if err != nil {
		return err
	}
	defer rabbitConn.Close()

	app, err := cmd.NewCompositionRoot(config, gormDB, redisClient, rabbitConn, l)
	if err != nil {
		return err
	}

	if err = seedManager(ctx, &app, config, l); err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	openAPI, err := apihttp.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}

	e := apihttp.NewServer(app.CreateHTTPHandlers(), app.TokenParser(), openAPI, l).NewEcho()
	e.Logger.SetLevel(echoLogLevel(config.LogLevel))

	return serve(ctx, e, config.HTTPPort, l)
}

// seedManager creates the first manager account so a fresh installation can be signed into.
func seedManager(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, l *zap.Logger) error {
	if config.AdminEmail == "" {
		l.Info("manager seeding skipped, SEED_MANAGER_EMAIL is not set")
		return nil
	}

	command, err := commands.NewEnsureManagerCommand(config.AdminName, config.AdminEmail, config.AdminPass, config.AdminOffice)
	if err != nil {
		return fmt.Errorf("seed manager: %w", err)
	}

	handler := app.CreateEnsureManagerCommandHandler()
	created, err := handler.Handle(ctx, command)
	if err != nil {
		return fmt.Errorf("seed manager: %w", err)
	}
	if created {
		l.Info("seeded manager account", zap.String("email", config.AdminEmail))
	}
	return nil
}

func serve(ctx context.Context, e *echo.Echo, port string, l *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		l.Info("food-service API listening", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	l.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
