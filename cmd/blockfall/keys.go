package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows the terminal keys bound to each logical key in the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	bindings, err := cfg.Input.Bindings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Key bindings:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := len("Action")
	for _, k := range core.Keys() {
		if n := len(k.String()); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Action", "Keys")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "------", "----")

	for _, k := range core.Keys() {
		keys := bindings[k]
		label := "(unbound)"
		if len(keys) > 0 {
			names := make([]string, len(keys))
			for i, key := range keys {
				if key == " " {
					key = "space"
				}
				names[i] = key
			}
			label = strings.Join(names, ", ")
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, k.String(), label)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "q/ctrl+c quits and ctrl+s saves a screenshot; these are not configurable.")
	return nil
}
