package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <serial> <path>",
	Short: "Read a parameter's last-known device value",
	Long: `get reads from device_cfg — the value last reported by the device,
not whatever is staged in desired_cfg via set.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, value, err := app.acs.GetParameter(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s) = %s\n", args[1], name, value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <serial> <path> <value>",
	Short: "Stage a parameter change into desired_cfg",
	Long: `set stages value into desired_cfg; the device picks it up on its next
session. The value is parsed as an integer or boolean when
possible, falling back to a plain string.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.acs.SetParameter(args[0], args[1], parseValue(args[2]))
	},
}

// parseValue guesses the most specific Go type a command-line value
// represents: int, then bool, then string. acs.SetParameter rejects
// anything else, so this never needs to produce a type it can't handle.
func parseValue(s string) interface{} {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
