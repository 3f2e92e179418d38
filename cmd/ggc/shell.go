package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/amonks/ggc/internal/ics"
	"github.com/amonks/ggc/internal/shell"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Manage countdowns with line commands on stdin",
	Long: `Read commands from stdin and print the countdown table after every change.

Commands: add <date> <label>, rm <id-or-label>, ls, ics, help, quit.
Countdowns live only as long as the session.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var (
	shellImportPath string
	shellNow        string
	shellVerbose    bool
)

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().StringVar(&shellImportPath, "import", "", "Seed countdowns from an iCalendar file")
	shellCmd.Flags().StringVar(&shellNow, "now", "", "Pretend the current time is this date")
	shellCmd.Flags().BoolVarP(&shellVerbose, "verbose", "v", false, "Log countdown changes to stderr")
	addNowFlagAliases(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	order, err := cfg.ListOrder()
	if err != nil {
		return err
	}
	clock, err := clockForNow(shellNow)
	if err != nil {
		return err
	}

	events, err := readImport(shellImportPath)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if shellVerbose {
		logger = log.New(cmd.ErrOrStderr(), "ggc: ", 0)
	}

	return shell.Run(cmd.Context(), shell.Options{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
		Clock:      clock,
		Order:      order,
		DateFormat: cfg.Display.DateFormat,
		Import:     events,
		Logger:     logger,
	})
}

func readImport(path string) ([]ics.Event, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import: %w", err)
	}
	defer file.Close()

	events, err := ics.Read(file)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return events, nil
}
