package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devfinder/internal/web"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	Addr string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile finder as a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, root *rootFlags, opts serveOptions) error {
	app, err := newAppContext(cmd, root, false)
	if err != nil {
		return err
	}
	defer app.Close()

	addr := app.Config.Server.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}

	handler, err := web.New(web.Options{
		Fetcher:      app.Fetcher,
		Policy:       app.Policy,
		Seed:         app.Seed,
		DefaultTheme: app.Themes.Current(),
		SessionKey:   app.Config.Server.SessionKey,
		Logger:       app.Logger,
	})
	if err != nil {
		return newCommandError("start server", addr, err, "Check server.session_key is exactly 32 characters.")
	}
	if app.Config.Server.SessionKey == "" {
		app.Logger.Warn("no server.session_key configured; theme sessions reset on restart")
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	app.Logger.WithFields(map[string]any{"addr": addr}).Info("started server")
	fmt.Fprintf(cmd.OutOrStdout(), "devfinder listening on %s\n", addr)

	ctx := cmd.Context()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return newCommandError("start server", addr, err, "Choose a free address with --addr.")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	app.Logger.Info("server stopped")
	return nil
}
