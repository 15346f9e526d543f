package repository

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cgwalters/sync-ostree-to-containers/internal/core"
	"github.com/cgwalters/sync-ostree-to-containers/internal/storage"
)

const (
	configFile = "config"
	objectsDir = "objects"
	headsDir   = "refs/heads"
	remotesDir = "refs/remotes"
)

// Repository represents a local OSTree repository
type Repository struct {
	Path  string
	store *storage.Store
}

// Open opens an existing repository, validating that the path looks like an
// OSTree repository (a config file next to an objects directory).
func Open(path string) (*Repository, error) {
	if _, err := os.Stat(filepath.Join(path, configFile)); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrNotARepository, path)
	}
	if fi, err := os.Stat(filepath.Join(path, objectsDir)); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", core.ErrNotARepository, path)
	}

	return &Repository{
		Path:  path,
		store: storage.NewStore(path),
	}, nil
}

// Store returns the object store
func (r *Repository) Store() *storage.Store {
	return r.store
}

// readRefFile reads one ref file and parses the checksum it contains
func (r *Repository) readRefFile(rel string) (core.Checksum, error) {
	data, err := os.ReadFile(filepath.Join(r.Path, rel))
	if err != nil {
		if os.IsNotExist(err) {
			return core.Checksum{}, core.ErrRefNotFound
		}
		return core.Checksum{}, fmt.Errorf("failed to read ref: %w", err)
	}

	return core.ParseChecksum(strings.TrimSpace(string(data)))
}

// LocalRef resolves refs/heads/<ref> to its commit checksum
func (r *Repository) LocalRef(ref string) (core.Checksum, error) {
	return r.readRefFile(filepath.Join(headsDir, ref))
}

// RemoteRef resolves refs/remotes/<remote>/<ref>, the ref a pull writes,
// to its commit checksum.
func (r *Repository) RemoteRef(remote, ref string) (core.Checksum, error) {
	sum, err := r.readRefFile(filepath.Join(remotesDir, remote, ref))
	if err == core.ErrRefNotFound {
		return sum, fmt.Errorf("%w: %s for remote %q", core.ErrRefNotFound, ref, remote)
	}
	return sum, err
}

// ResolveRemoteRefs resolves many remote refs at once. The result slice is
// index-aligned with refs; resolution happens concurrently since each ref is
// an independent file read.
func (r *Repository) ResolveRemoteRefs(remote string, refs []string) ([]core.Checksum, error) {
	sums := make([]core.Checksum, len(refs))

	var g errgroup.Group
	for i, ref := range refs {
		i, ref := i, ref // capture loop variables
		g.Go(func() error {
			sum, err := r.RemoteRef(remote, ref)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sums, nil
}

// ListRemoteRefs returns the refs pulled so far from a remote, as
// slash-joined names relative to refs/remotes/<remote>. Ref names span
// multiple path segments, so the walk recurses.
func (r *Repository) ListRemoteRefs(remote string) ([]string, error) {
	root := filepath.Join(r.Path, remotesDir, remote)

	var refs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return nil // nothing pulled yet
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		refs = append(refs, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list refs for remote %q: %w", remote, err)
	}

	return refs, nil
}
