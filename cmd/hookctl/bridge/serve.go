package bridge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/migrate"
)

var (
	listenAddr string

	serveCommand = &cobra.Command{
		Use:   "serve",
		Short: "Start the development bridge",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			cfg := config.FromContext(ctx)
			if listenAddr != "" {
				cfg.Bridge.ListenAddr = listenAddr
			}

			if err := migrate.Migrate(ctx, db.FromContext(ctx)); err != nil {
				return fmt.Errorf("migration error: %w", err)
			}

			s, err := NewServer(ctx)
			if err != nil {
				return fmt.Errorf("start server: %w", err)
			}

			lch := make(chan error, 1)
			done := make(chan os.Signal, 1)
			doneOnce := sync.OnceFunc(func() { close(done) })

			signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

			// Lets the test suite stop the server without signals.
			if testRun, _ := strconv.ParseBool(os.Getenv("HOOKCTL_TESTRUN")); testRun {
				h := s.HTTPServer.Server.Handler
				s.HTTPServer.Server.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					if r.URL.Path == "/__stop" && r.Method == http.MethodHead {
						doneOnce()
						return
					}
					h.ServeHTTP(w, r)
				})
			}

			go func() {
				lch <- s.Start()
				doneOnce()
			}()

			select {
			case err := <-lch:
				if err != nil {
					return fmt.Errorf("server error: %w", err)
				}
			case <-done:
			}

			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return s.Shutdown(ctx)
		},
	}

	migrateCommand = &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the development bridge database",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			if err := migrate.Migrate(ctx, db.FromContext(ctx)); err != nil {
				return fmt.Errorf("migration error: %w", err)
			}

			fmt.Fprintln(c.OutOrStdout(), "Database is up to date")
			return nil
		},
	}
)

func init() {
	serveCommand.Flags().StringVarP(&listenAddr, "listen", "l", "", "address the bridge API listens on")
}
