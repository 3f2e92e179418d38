//go:build tray

package main

import (
	"github.com/amonks/ggc/internal/tray"
	"github.com/spf13/cobra"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Show countdowns in the desktop system tray",
	Args:  cobra.NoArgs,
	RunE:  runTray,
}

var trayLogPath string

func init() {
	rootCmd.AddCommand(trayCmd)
	trayCmd.Flags().StringVar(&trayLogPath, "log", "", "Append logs to this file")
}

func runTray(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	order, err := cfg.ListOrder()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(trayLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	return tray.Run(cmd.Context(), tray.Options{
		Title:  cfg.Display.Title,
		Order:  order,
		Logger: logger,
	})
}
