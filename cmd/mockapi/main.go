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
	"golang.org/x/sync/errgroup"

	"coursehub/internal/logging"
	"coursehub/internal/mockapi"
	"coursehub/internal/store"
)

var (
	addr      string
	seedFile  string
	watch     bool
	delay     time.Duration
	logLevel  string
	logFormat string
)

func main() {
	cmd := &cobra.Command{
		Use:          "mockapi",
		Short:        "Serve the in-memory courses API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML/JSON seed file (default built-in catalogue)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the seed file when it changes")
	cmd.Flags().DurationVar(&delay, "delay", 0, "simulated latency per request")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "text or json")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger, err := logging.New(os.Stderr, logFormat, logLevel)
	if err != nil {
		return err
	}
	seed, err := store.LoadSeed(seedFile)
	if err != nil {
		return err
	}
	st := store.NewMemoryStore(seed)

	h := mockapi.NewHandler(st)
	h.Logger = logger
	h.Delay = delay

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})
	mux.Handle("/api/", h)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("mockapi listening", "addr", addr, "courses", len(seed))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if watch && seedFile != "" {
		g.Go(func() error {
			sw := &mockapi.SeedWatcher{Path: seedFile, Store: st, Logger: logger}
			return sw.Run(ctx)
		})
	}
	return g.Wait()
}
