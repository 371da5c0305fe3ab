// Command unitconv converts length, mass and temperature values and keeps a
// per-session history of saved conversions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/unitconv/internal/cli"
	"github.com/roach88/unitconv/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(cfg)
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Commands print their own ExitErrors; anything else is a usage error.
		code := cli.ExitCommandError
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(code)
	}
}
