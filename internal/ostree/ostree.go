// Package ostree shells out to the ostree binary. It is the only place in
// the tree that starts external processes; everything above it talks to the
// collaborator through the fetch package's RefSource and FetchSink
// interfaces so it can be faked in tests.
package ostree

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cgwalters/sync-ostree-to-containers/internal/core"
)

const defaultBinary = "ostree"

// Tool invokes the ostree binary against a single repository.
type Tool struct {
	Repo   string // passed as --repo on every invocation
	Binary string

	// run executes one invocation and returns stdout. Tests replace it.
	run func(args ...string) ([]byte, error)
}

// New returns a Tool that shells out to "ostree" for the given repository path.
func New(repo string) *Tool {
	t := &Tool{Repo: repo, Binary: defaultBinary}
	t.run = t.execute
	return t
}

func (t *Tool) execute(args ...string) ([]byte, error) {
	argv := append([]string{"--repo", t.Repo}, args...)
	log.Debug("running collaborator", "cmd", t.Binary+" "+strings.Join(argv, " "))

	cmd := exec.Command(t.Binary, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &CommandError{
			Args:   append([]string{t.Binary}, argv...),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}

// ListRefs returns every ref name the remote advertises, in the order the
// ref-source reports them. Each output line has the form <remote>:<ref>;
// everything after the first colon is the ref name.
func (t *Tool) ListRefs(remote string) ([]string, error) {
	out, err := t.run("remote", "refs", remote)
	if err != nil {
		return nil, err
	}
	return parseRefLines(out)
}

// Pull fetches one ref's commit from the remote into the repository. The
// call blocks until the collaborator finishes; no timeout is applied.
func (t *Tool) Pull(remote, ref string) error {
	_, err := t.run("pull", remote, ref)
	return err
}

func parseRefLines(out []byte) ([]string, error) {
	var refs []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		_, ref, found := strings.Cut(line, ":")
		if !found {
			// The whole listing is suspect at this point, not just
			// this line, so fail the call rather than skip.
			return nil, fmt.Errorf("%w: %q", core.ErrMalformedRefLine, line)
		}
		refs = append(refs, ref)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ref listing: %w", err)
	}

	return refs, nil
}
