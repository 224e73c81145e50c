package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jig-dev/jig/config"
	"github.com/jig-dev/jig/internal"
	"github.com/jig-dev/jig/internal/ctxlog"
	"github.com/jig-dev/jig/recipe"
	"github.com/jig-dev/jig/recipefile"
)

// logLevel is shared with the root command's --verbose flag.
var logLevel slog.LevelVar

func Main() {
	registerWatchRecipe()
	internal.LockCustomizations()

	if os.Getenv(strings.ToUpper(internal.AppName())+"_DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctxlog.WithLogger(ctx, logger))
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		ec := 1
		var ece ExitCodeErr
		if errors.As(err, &ece) {
			ec = ece.ExitCode()
		}
		os.Exit(ec)
	}
}

func run(ctx context.Context) error {
	if err := config.Initialize(); err != nil {
		return err
	}
	pf, err := recipefile.Load(ctx, ".")
	if err != nil {
		return err
	}
	if err := pf.Register(recipe.Default(), "."); err != nil {
		return err
	}
	return Root().ExecuteContext(ctx)
}

type ExitCodeErr interface {
	ExitCode() int
}
