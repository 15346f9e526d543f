package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	repoPath      string
	remoteName    string
	formatVersion int
	verbose       bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-ostree-to-containers",
		Short: "Fetch OSTree refs matching a glob from a remote",
		Long: `Resolve a glob pattern (for example fedora/36/*/silverblue) against the
refs advertised by an OSTree remote and pull each matching ref's commit
into a local repository.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			// Only format version 1 exists today.
			if formatVersion != 1 {
				return fmt.Errorf("unsupported container format version %d", formatVersion)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&repoPath, "repo", "", "path to the OSTree repository")
	cmd.PersistentFlags().StringVar(&remoteName, "remote", "", "OSTree remote name")
	cmd.PersistentFlags().IntVar(&formatVersion, "format-version", 1, "the ostree container format version")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log external command invocations")
	cmd.MarkPersistentFlagRequired("repo")

	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newRefsCmd())
	cmd.AddCommand(newRemotesCmd())
	cmd.AddCommand(newVerifyCmd())

	return cmd
}

// requireRemote rejects subcommands that need --remote when it is unset.
// "remotes" is the only one that doesn't.
func requireRemote() error {
	if remoteName == "" {
		return fmt.Errorf("required flag \"remote\" not set")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
