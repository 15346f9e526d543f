// Package fetch orchestrates the list-match-pull flow: enumerate the refs a
// remote advertises, select the subset matching a glob, then pull each match
// in order through the fetch-sink collaborator.
package fetch

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/cgwalters/sync-ostree-to-containers/internal/glob"
)

// RefSource enumerates the refs a remote advertises.
type RefSource interface {
	ListRefs(remote string) ([]string, error)
}

// FetchSink transfers one ref's commit into the local repository.
type FetchSink interface {
	Pull(remote, ref string) error
}

// Fetcher drives one fetch invocation against a pair of collaborators.
type Fetcher struct {
	Source RefSource
	Sink   FetchSink

	// Out receives the match report and per-ref progress.
	Out io.Writer
}

// New returns a Fetcher reporting to stdout.
func New(source RefSource, sink FetchSink) *Fetcher {
	return &Fetcher{Source: source, Sink: sink, Out: os.Stdout}
}

// Run lists the refs remote advertises, reports the subset matching pattern,
// then pulls each matched ref sequentially. The first pull failure aborts the
// loop; refs after it are never attempted and completed pulls are left in
// place. An empty match set is a successful no-op. Duplicate matched refs are
// pulled once per occurrence.
func (f *Fetcher) Run(remote, pattern string) error {
	refs, err := f.Source.ListRefs(remote)
	if err != nil {
		return fmt.Errorf("failed to list refs for remote %q: %w", remote, err)
	}

	matched := glob.Match(refs, pattern)
	f.report(len(refs), matched)

	for _, ref := range matched {
		fmt.Fprintf(f.Out, "Pulling %s\n", ref)
		if err := f.Sink.Pull(remote, ref); err != nil {
			return &PullError{Remote: remote, Ref: ref, Err: err}
		}
	}

	return nil
}

func (f *Fetcher) report(total int, matched []string) {
	fmt.Fprintf(f.Out, "Matched %d of %d refs\n", len(matched), total)
	for _, ref := range matched {
		fmt.Fprintf(f.Out, "  %s\n", color.CyanString(ref))
	}
}
