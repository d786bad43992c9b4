package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dj-forge/craftops/craftops"
	"github.com/dj-forge/craftops/craftops/command"
)

// main ...
func main() {
	os.Exit(run())
}

// run ...
func run() int {
	conf, err := craftops.ReadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	level, err := craftops.ParseLogLevel(conf.CraftOps.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	slog.SetLogLoggerLevel(level)
	log := slog.Default()

	if dsn := conf.CraftOps.SentryDsn; dsn != "" {
		if err = sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warn("failed to initialize sentry", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ops := craftops.NewCraftOps(log, conf)

	root := command.New(ops)
	if err = root.ExecuteContext(ctx); err != nil {
		var usage *command.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintf(os.Stderr, "usage error: %v\n", usage)
			return 2
		}

		sentry.CaptureException(err)
		log.Error("command failed", "error", err)
		return 1
	}
	return 0
}
