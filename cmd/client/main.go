package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authpages/internal/buildinfo"
	"github.com/dmitrijs2005/authpages/internal/client/cli"
	"github.com/dmitrijs2005/authpages/internal/client/client"
	"github.com/dmitrijs2005/authpages/internal/client/config"
	"github.com/dmitrijs2005/authpages/internal/client/pages"
	"github.com/dmitrijs2005/authpages/internal/client/session"
	"github.com/dmitrijs2005/authpages/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}

// run returns instead of exiting so deferred cleanup (log file, signal
// handler, session db) always happens.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, closer := logging.Setup(logging.Options{Debug: cfg.Debug, FilePath: cfg.LogFile, Console: os.Stderr})
	defer closer.Close()

	store, err := session.OpenSQLiteStore(ctx, cfg.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error opening session store", "path", cfg.SessionDBPath, "error", err)
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	api, err := client.NewHTTPClient(cfg.ServerBaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger.With("component", "api")),
	)
	if err != nil {
		logger.Error(ctx, "error creating api client", "url", cfg.ServerBaseURL, "error", err)
		return fmt.Errorf("create api client: %w", err)
	}

	app := cli.NewApp(pages.Deps{
		API:    api,
		Store:  store,
		Log:    logger,
		Policy: cfg.MessagePolicy,
	}, os.Stdin, os.Stdout)

	app.Run(ctx)
	return nil
}
