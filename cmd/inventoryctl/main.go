package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory/internal/client"

	"github.com/pkg/errors"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	os.Exit(run())
}

func run() int {
	serverURL := defaultServerURL
	if env := os.Getenv("INVENTORY_URL"); env != "" {
		serverURL = env
	}

	statePath, err := client.DefaultStatePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	flags := flag.NewFlagSet("inventoryctl", flag.ContinueOnError)
	flags.StringVar(&serverURL, "server", serverURL, "inventory server base URL (env INVENTORY_URL)")
	flags.StringVar(&statePath, "state", statePath, "path of the client state file")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverURL, client.NewStore(statePath))
	if err := app.Run(ctx, flags.Args()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		app.Report(err)

		return 1
	}

	return 0
}
