//go:build !tray

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errTrayUnsupported = errors.New("ggc was built without tray support (rebuild with -tags tray)")

var trayCmd = &cobra.Command{
	Use:    "tray",
	Short:  "Show countdowns in the desktop system tray",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errTrayUnsupported
	},
}

func init() {
	rootCmd.AddCommand(trayCmd)
}
