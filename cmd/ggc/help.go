package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, ok := findHelpTopic(root, args)
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

// findHelpTopic resolves args to a command. The root takes no arguments, so
// Find falls back to it for unknown names and leaves them in the remainder.
func findHelpTopic(root *cobra.Command, args []string) (*cobra.Command, bool) {
	target, rest, err := root.Find(args)
	if err != nil || target == nil {
		return nil, false
	}
	if target == root && len(rest) > 0 {
		return nil, false
	}
	return target, true
}
