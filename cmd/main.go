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

	"homzen/internal/config"
	"homzen/internal/handlers"
	"homzen/internal/logger"
	"homzen/internal/router"
	"homzen/internal/storage"
	"homzen/internal/storage/memory"
	"homzen/internal/storage/mongo"
	"homzen/internal/storage/postgres"
	"homzen/internal/storage/redis"

	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "homzen",
		Short: "Real-estate listing backend",
		RunE:  runServe,
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create indexes (mongo) or tables (postgres) and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx := cmd.Context()

		_, prepare, closeDb, err := openDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeDb()

		if err := prepare(ctx); err != nil {
			return err
		}

		logger.Log.Infow("Storage prepared", "driver", cfg.Storage.Driver)
		return nil
	},
}

var (
	tokenEmail string
	tokenName  string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed access token for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(false)
		if err != nil {
			return err
		}

		if cfg.Token.Secret == "" {
			return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
		}

		ttl := cfg.Token.TTL
		if tokenTTL > 0 {
			ttl = tokenTTL
		}

		token, err := handlers.IssueToken(handlers.TokenConfig{Secret: cfg.Token.Secret, TTL: ttl}, tokenEmail, tokenName)
		if err != nil {
			return err
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "subject email")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to TOKEN_TTL)")
	_ = tokenCmd.MarkFlagRequired("email")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, prepare, closeDb, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDb()

	if err := prepare(ctx); err != nil {
		return err
	}

	cache, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	tokens := handlers.TokenConfig{Secret: cfg.Token.Secret, TTL: cfg.Token.TTL}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(database, cache, tokens),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infow("Listening", "addr", server.Addr, "driver", cfg.Storage.Driver)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func loadConfig(validate bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		return nil, err
	}

	return cfg, nil
}

// openDatabase connects the configured backend. prepare creates the
// unique indexes or tables the stores depend on.
func openDatabase(ctx context.Context, cfg *config.Config) (storage.Database, func(context.Context) error, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}

		closeDb := func() {
			if err := db.Close(); err != nil {
				logger.Log.Warnw("Closing postgres", "err", err)
			}
		}

		return db, db.Migrate, closeDb, nil
	default:
		db, err := mongo.New(ctx, cfg.MongoURI(), cfg.Mongo.Database)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect mongodb: %w", err)
		}

		logger.Log.Infow("Pinged your deployment. Connected to MongoDB", "database", cfg.Mongo.Database)

		closeDb := func() {
			if err := db.Close(context.Background()); err != nil {
				logger.Log.Warnw("Closing mongodb", "err", err)
			}
		}

		return db, db.EnsureIndexes, closeDb, nil
	}
}

func openCache(ctx context.Context, cfg *config.Config) (storage.Cache, func(), error) {
	if cfg.Redis.Addr == "" {
		cache, err := memory.New(cfg.Redis.TTL)
		if err != nil {
			return nil, nil, err
		}

		return cache, cache.Close, nil
	}

	cache, err := redis.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	closeCache := func() {
		if err := cache.Close(); err != nil {
			logger.Log.Warnw("Closing redis", "err", err)
		}
	}

	return cache, closeCache, nil
}
