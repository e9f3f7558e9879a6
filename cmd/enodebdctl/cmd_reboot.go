package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enodebd-net/enodebd-acs/pkg/cli"
)

var rebootCmd = &cobra.Command{
	Use:   "reboot <serial>",
	Short: "Force an enodeb into the manual reboot branch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.acs.Reboot(args[0]); err != nil {
			return err
		}
		fmt.Println(cli.Green("reboot staged"), "— takes effect at the device's next session")
		return nil
	},
}

var rebootAllCmd = &cobra.Command{
	Use:   "reboot-all",
	Short: "Force every currently known enodeb into the manual reboot branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.acs.RebootAll()
		fmt.Println(cli.Green("reboot staged for every known enodeb"))
		return nil
	},
}
