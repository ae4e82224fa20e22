package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/rebalance/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	cfg *Config

	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the rebalancing HTTP service" }
func (*serveCmd) Usage() string {
	return `rebal serve [-addr <host:port>]

  Runs a stateless HTTP service:

    POST /rebalance   portfolio definition, prices and tolerance in, report out
    GET  /healthz     liveness

  See 'rebal topic service' for details.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", c.cfg.Addr, "address to listen on")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger(c.cfg)
	srv := server.New(server.Config{
		Addr:        c.addr,
		Log:         log,
		CORSOrigins: c.cfg.CORSOrigins,
		Tolerance:   c.cfg.Tolerance,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		fmt.Fprintf(os.Stderr, "Error running server: %v\n", err)
		return subcommands.ExitFailure
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error shutting down server: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error running server: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
