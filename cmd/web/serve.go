package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing site",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "HTTP listen address (overrides config)")
	serveCmd.Flags().Bool("dev", false, "reparse templates per request and watch the content directory")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("dev") {
		cfg.Dev, _ = cmd.Flags().GetBool("dev")
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.serve(ctx)
}

// serve runs the HTTP server and background workers until ctx is done.
func (a *app) serve(ctx context.Context) error {
	handler, err := a.routes()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          zap.NewStdLog(a.log.Named("http")),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("web listening", zap.String("addr", a.cfg.Addr), zap.Bool("dev", a.cfg.Dev))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error { return a.pages.Run(gctx, a.cfg.SweepInterval) })
	if a.cfg.Dev && a.cfg.ContentDir != "" {
		g.Go(func() error { return a.store.Watch(gctx, a.cfg.ContentDir, a.cfg.DefaultSite, a.log.Named("content")) })
	}
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")
		// hijacked websocket connections are not covered by Shutdown
		a.live.Close()
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGrace)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
