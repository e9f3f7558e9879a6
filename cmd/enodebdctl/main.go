// enodebdctl is a local operator CLI over the ACS control surface
// GetParameter, SetParameter, Reboot, RebootAll, Download,
// GetStatus, GetAllEnodebStatus, GetEnodebStatus. It builds the same
// *acs.ACS facade a transport-integrated process would embed, minus
// the transport itself — a real deployment wires a SOAP/XML listener
// to the same manager.Manager this binary constructs and calls
// Manager.Dispatch from it, which is out of this repository's scope.
// Run standalone, enodebdctl only ever sees devices that never
// connect; its value here is validating operator configuration and
// exercising the control surface in integration tests.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enodebd-net/enodebd-acs/pkg/acs"
	"github.com/enodebd-net/enodebd-acs/pkg/bootstrap"
	"github.com/enodebd-net/enodebd-acs/pkg/opconfig"
	"github.com/enodebd-net/enodebd-acs/pkg/util"
)

// App holds CLI state shared across all commands.
type App struct {
	configPath string
	verbose    bool

	acs *acs.ACS
}

var app = &App{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "enodebdctl",
	Short:         "Control surface for the eNodeB auto-configuration server",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `enodebdctl drives the ACS control surface directly, in-process.

  enodebdctl list
  enodebdctl show <serial>
  enodebdctl get <serial> <path>
  enodebdctl set <serial> <path> <value>
  enodebdctl reboot <serial>
  enodebdctl reboot-all
  enodebdctl download <serial> <url> [flags]

Without -c/--config, every model other than the CBRS-capable QRTB
comes up with an empty operator configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isHelpOrVersion(cmd) {
			return nil
		}

		if app.verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		var cfg *opconfig.OperatorConfig
		if app.configPath != "" {
			var err error
			cfg, err = opconfig.Load(app.configPath)
			if err != nil {
				return fmt.Errorf("loading operator config: %w", err)
			}
		}

		app.acs = bootstrap.NewACS(bootstrap.Options{OperatorConfig: cfg})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Operator configuration YAML file")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(listCmd, showCmd, getCmd, setCmd, rebootCmd, rebootAllCmd, downloadCmd, statusCmd)
}

func isHelpOrVersion(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" {
			return true
		}
	}
	return false
}
