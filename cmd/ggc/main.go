// Package main implements the ggc CLI tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/indicator"
	"github.com/amonks/ggc/internal/config"
	"github.com/amonks/ggc/internal/paths"
	internalstrings "github.com/amonks/ggc/internal/strings"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ggc",
	Short: "GGC - Gnome Genial Countdowns",
	Long:  "Track named countdowns and see the whole days remaining until each one.",
	Args:  cobra.NoArgs,
	RunE:  runPanel,
}

// loadConfig reads global, project and environment configuration.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// clockForNow returns a clock frozen at now, or the wall clock when now is blank.
func clockForNow(now string) (indicator.Clock, error) {
	if internalstrings.IsBlank(now) {
		return indicator.WallClock{}, nil
	}
	at, err := countdown.ParseDate(now)
	if err != nil {
		return nil, err
	}
	return indicator.FixedClock{At: at}, nil
}
