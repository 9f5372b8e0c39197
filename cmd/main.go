package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codebench-2025.net/internal/adapter/executor"
	"gitlab.com/codebench-2025.net/internal/adapter/postgres/fixturerepository"
	"gitlab.com/codebench-2025.net/internal/adapter/redis/sessionstore"
	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/core/services/workbench"
	logger2 "gitlab.com/codebench-2025.net/internal/global/logger"
	http2 "gitlab.com/codebench-2025.net/internal/http"
)

func main() {
	InitReader()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting test-case workbench service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	fixtureRepo := fixturerepository.NewFixtureRepository(db, logger)
	sessionStore := sessionstore.NewSessionStore(redisClient, logger)
	executorClient := executor.NewClient(sysCfg.ExecutorConfig, logger)

	//services
	workbenchSvc := workbench.NewWorkbenchService(fixtureRepo, sessionStore, executorClient, logger)
	serviceProvider := http2.NewServiceProvider(workbenchSvc)

	//server
	httpServer := http2.NewServer(sysCfg.HTTPConfig.Port, "workbench", *serviceProvider, sysCfg.JwtConfig, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// InitReader loads the env file named by the first argument; with no
// argument the process environment is used as-is.
func InitReader() {
	if len(os.Args) < 2 {
		return
	}
	environment := os.Args[1]
	if err := godotenv.Load(environment + ".env"); err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
