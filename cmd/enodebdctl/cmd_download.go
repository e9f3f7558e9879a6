package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/enodebd-net/enodebd-acs/pkg/cli"
)

var downloadOpts struct {
	user           string
	password       string
	targetFileName string
	fileSize       int
	md5            string
}

var downloadCmd = &cobra.Command{
	Use:   "download <serial> <url>",
	Short: "Stage a firmware/file transfer and force the manual download branch",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if downloadOpts.password == "" && downloadOpts.user != "" && term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Print("download server password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			downloadOpts.password = string(raw)
		}

		result, err := app.acs.Download(args[0], args[1],
			downloadOpts.user, downloadOpts.password,
			downloadOpts.targetFileName, downloadOpts.fileSize, downloadOpts.md5)
		if err != nil {
			return err
		}
		fmt.Println(cli.Green("download "+result.Status), "— takes effect at the device's next session")
		return nil
	},
}

func init() {
	flags := downloadCmd.Flags()
	flags.StringVar(&downloadOpts.user, "user", "", "Download server username")
	flags.StringVar(&downloadOpts.password, "password", "", "Download server password")
	flags.StringVar(&downloadOpts.targetFileName, "target-filename", "", "Target file name on the device")
	flags.IntVar(&downloadOpts.fileSize, "file-size", 0, "Expected file size in bytes")
	flags.StringVar(&downloadOpts.md5, "md5", "", "Expected MD5 checksum")
}
