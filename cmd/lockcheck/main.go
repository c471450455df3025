// lockcheck validates that an npm package-lock.json is fully resolved:
// every installed dependency entry must carry both an integrity checksum
// and a resolved download location. Intended as a CI gate before install
// steps that assume a complete lockfile.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lockcheck/lockcheck/pkg/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "lockcheck [dir]",
	Short: "Validate that package-lock.json entries are fully resolved",
	Long: `Validate that every installed dependency in a package-lock.json carries
both an integrity checksum and a resolved download location.

Reads package-lock.json from the given directory (the current directory
when omitted). Exits 0 when the lockfile is fully resolved and prints
nothing; exits 1 with a report of the offending entries otherwise.

Root, workspace, and symlinked (link: true) entries are exempt: they have
no fetched content of their own.

Examples:
  lockcheck              # check ./package-lock.json
  lockcheck path/to/app  # check path/to/app/package-lock.json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return cli.RunCheck(cli.CheckConfig{Dir: dir})
	},
}

func init() {
	rootCmd.AddCommand(newVersionCommand())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lockcheck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lockcheck version %s\n", version)
		},
	}
}

func main() {
	// The check's own report is the only output; the error return only
	// drives the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
