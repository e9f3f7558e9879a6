package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/enodebd-net/enodebd-acs/pkg/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every currently known enodeb and its FSM state",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := app.acs.GetAllEnodebStatus()
		t := cli.NewTable("SERIAL", "STATE", "CONNECTED", "CONFIGURED", "RF TX", "IP ADDRESS")
		for _, r := range rows {
			t.Row(
				r.DeviceSerial,
				cli.StateColor(r.FSMState),
				cli.BoolIndicator(r.Connected),
				cli.BoolIndicator(r.Configured),
				cli.BoolIndicator(r.RFTxOn),
				dash(r.IPAddress),
			)
		}
		if len(rows) == 0 {
			fmt.Println(cli.Dim("no enodebs known to this process"))
			return nil
		}
		t.Flush()
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <serial>",
	Short: "Show full status for one enodeb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := app.acs.GetEnodebStatus(args[0])
		if err != nil {
			return err
		}
		rows := [][2]string{
			{"serial", st.DeviceSerial},
			{"ip address", dash(st.IPAddress)},
			{"fsm state", cli.StateColor(st.FSMState)},
			{"connected", cli.BoolIndicator(st.Connected)},
			{"configured", cli.BoolIndicator(st.Configured)},
			{"op state enabled", cli.BoolIndicator(st.OpStateEnabled)},
			{"rf tx on", cli.BoolIndicator(st.RFTxOn)},
			{"rf tx desired", cli.BoolIndicator(st.RFTxDesired)},
			{"gps connected", cli.BoolIndicator(st.GPSConnected)},
			{"ptp connected", cli.BoolIndicator(st.PTPConnected)},
			{"mme connected", cli.BoolIndicator(st.MMEConnected)},
			{"gps latitude", dash(st.GPSLatitude)},
			{"gps longitude", dash(st.GPSLongitude)},
		}
		width := 0
		for _, row := range rows {
			if len(row[0]) > width {
				width = len(row[0])
			}
		}
		for _, row := range rows {
			fmt.Println(cli.DotPad(row[0], width+3) + " " + row[1])
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a flat process-wide status summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv := app.acs.GetStatus()
		keys := make([]string, 0, len(kv))
		for k := range kv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %s\n", k, kv[k])
		}
		return nil
	},
}

// dash returns s if non-empty, otherwise "-".
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
