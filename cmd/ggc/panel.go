package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/amonks/ggc/internal/panel"
	"github.com/spf13/cobra"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Show the interactive countdown panel",
	Args:  cobra.NoArgs,
	RunE:  runPanel,
}

var (
	panelLogPath string
	panelNow     string
)

func init() {
	rootCmd.AddCommand(panelCmd)
	for _, cmd := range []*cobra.Command{rootCmd, panelCmd} {
		cmd.Flags().StringVar(&panelLogPath, "log", "", "Append logs to this file")
		cmd.Flags().StringVar(&panelNow, "now", "", "Pretend the current time is this date")
	}
	addNowFlagAliases(rootCmd, panelCmd)
}

func runPanel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	order, err := cfg.ListOrder()
	if err != nil {
		return err
	}
	clock, err := clockForNow(panelNow)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(panelLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	return panel.Run(cmd.Context(), panel.Options{
		Title:      cfg.Display.Title,
		DateFormat: cfg.Display.DateFormat,
		Clock:      clock,
		Order:      order,
		Logger:     logger,
	})
}

// openLogFile returns a logger appending to path, or a discarding logger when path is empty.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(file, "ggc: ", log.LstdFlags), func() { _ = file.Close() }, nil
}
