package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"records-api/internal/config"
	apphttp "records-api/internal/http"
	"records-api/internal/logging"
	"records-api/internal/repository/sqlite"
	"records-api/internal/service"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "records-api",
		Short:         "User and product record service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.{yaml,json,toml} if present)")

	root.AddCommand(&cobra.Command{
		Use:   "init-db",
		Short: "Create the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(configPath)
			if err != nil {
				return err
			}
			_, closeDB, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()
			logger.Infof("schema ready at %s", cfg.Database.Path)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "records-api %s\n", version)
		},
	})

	return root
}

func bootstrap(configPath string) (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return config.Config{}, nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup logging: %v\n", err)
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

// openStore opens the database and runs the startup schema hook.
func openStore(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*sqlite.Store, func(), error) {
	db, err := sqlite.Open(ctx, sqlite.Options{
		Path:         cfg.Database.Path,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	})
	if err != nil {
		logger.Errorf("open database: %v", err)
		return nil, nil, err
	}

	store := sqlite.NewStore(db)
	if err := store.Init(ctx); err != nil {
		db.Close()
		logger.Errorf("init schema: %v", err)
		return nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Warnf("close database: %v", err)
		}
	}
	return store, closeDB, nil
}

func serve(parent context.Context, configPath string) error {
	cfg, logger, err := bootstrap(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeDB, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	gin.SetMode(gin.ReleaseMode)
	handler := apphttp.NewHandler(
		store,
		store,
		service.NewUserService(),
		service.NewProductService(),
		logger,
	)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apphttp.NewRouter(handler),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s (database %s)", cfg.Server.Addr, cfg.Database.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Errorf("http server: %v", err)
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
	return nil
}
