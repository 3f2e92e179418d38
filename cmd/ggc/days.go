package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/internal/ui"
	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days <date>",
	Short: "Print the whole days remaining until a date",
	Args:  cobra.ExactArgs(1),
	RunE:  runDays,
}

var (
	daysNow  string
	daysJSON bool
)

type daysOutput struct {
	Target time.Time `json:"target"`
	Now    time.Time `json:"now"`
	Days   int       `json:"days"`
	Unit   string    `json:"unit"`
}

func init() {
	rootCmd.AddCommand(daysCmd)
	daysCmd.Flags().StringVar(&daysNow, "now", "", "Count from this date instead of the current time")
	daysCmd.Flags().BoolVar(&daysJSON, "json", false, "Output JSON")
	addNowFlagAliases(daysCmd)
}

func runDays(cmd *cobra.Command, args []string) error {
	target, err := countdown.ParseDate(args[0])
	if err != nil {
		return err
	}
	clock, err := clockForNow(daysNow)
	if err != nil {
		return err
	}
	now := clock.Now()
	days := countdown.DaysRemaining(target, now)

	if daysJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(daysOutput{Target: target, Now: now, Days: days, Unit: ui.DayUnit(days)})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.FormatDays(days))
	return err
}
