package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cgwalters/sync-ostree-to-containers/internal/fetch"
	"github.com/cgwalters/sync-ostree-to-containers/internal/glob"
	"github.com/cgwalters/sync-ostree-to-containers/internal/ostree"
	"github.com/cgwalters/sync-ostree-to-containers/internal/remote"
	"github.com/cgwalters/sync-ostree-to-containers/internal/repository"
)

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch REFGLOB",
		Short: "Fetch every ref matching a glob; for example, fedora/36/*/silverblue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRemote(); err != nil {
				return err
			}
			repo, err := repository.Open(repoPath)
			if err != nil {
				return err
			}
			// Validate the remote is configured before shelling out.
			if _, err := remote.GetRemote(repo.Path, remoteName); err != nil {
				return err
			}

			tool := ostree.New(repo.Path)
			f := fetch.New(tool, tool)
			f.Out = cmd.OutOrStdout()
			return f.Run(remoteName, args[0])
		},
	}
}

func newRefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refs [REFGLOB]",
		Short: "List the refs a remote advertises, optionally filtered by a glob",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRemote(); err != nil {
				return err
			}
			repo, err := repository.Open(repoPath)
			if err != nil {
				return err
			}

			refs, err := ostree.New(repo.Path).ListRefs(remoteName)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				refs = glob.Match(refs, args[0])
			}

			for _, ref := range refs {
				fmt.Fprintln(cmd.OutOrStdout(), ref)
			}
			return nil
		},
	}
}
