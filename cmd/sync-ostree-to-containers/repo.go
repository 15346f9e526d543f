package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cgwalters/sync-ostree-to-containers/internal/glob"
	"github.com/cgwalters/sync-ostree-to-containers/internal/ostree"
	"github.com/cgwalters/sync-ostree-to-containers/internal/remote"
	"github.com/cgwalters/sync-ostree-to-containers/internal/repository"
)

func newRemotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remotes",
		Short: "List the remotes configured in the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.Open(repoPath)
			if err != nil {
				return err
			}

			remotes, err := remote.ListRemotes(repo.Path)
			if err != nil {
				return err
			}

			for _, r := range remotes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", color.GreenString(r.Name), r.URL)
			}
			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify REFGLOB",
		Short: "Check that previously fetched refs resolve to commit objects in the local store",
		Args:  cobra.ExactArgs(1),
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
			matched := glob.Match(refs, args[0])

			sums, err := repo.ResolveRemoteRefs(remoteName, matched)
			if err != nil {
				return err
			}

			missing := 0
			for i, ref := range matched {
				if repo.Store().HasCommit(sums[i]) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", color.GreenString("ok"), ref, sums[i].Short())
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", color.RedString("missing"), ref, sums[i].Short())
					missing++
				}
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d commit objects missing from local store", missing, len(matched))
			}
			return nil
		},
	}
}
