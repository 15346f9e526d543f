// Package storage gives read-only access to an OSTree repository's object
// store. Objects live under objects/ sharded by the first two hex characters
// of their checksum, with the object kind as the file extension.
package storage

import (
	"os"
	"path/filepath"

	"github.com/cgwalters/sync-ostree-to-containers/internal/core"
)

// ObjectType is the on-disk object kind
type ObjectType string

const (
	ObjectTypeCommit  ObjectType = "commit"
	ObjectTypeDirTree ObjectType = "dirtree"
	ObjectTypeDirMeta ObjectType = "dirmeta"
	ObjectTypeFile    ObjectType = "file"
)

// Store reads an OSTree object store
type Store struct {
	root string
}

// NewStore returns a Store over the repository's objects directory
func NewStore(repoPath string) *Store {
	return &Store{root: filepath.Join(repoPath, "objects")}
}

// objectPath returns objects/<cc>/<rest>.<type> for a checksum
func (s *Store) objectPath(sum core.Checksum, typ ObjectType) string {
	hex := sum.String()
	return filepath.Join(s.root, hex[:2], hex[2:]+"."+string(typ))
}

// Exists reports whether an object of the given kind is present
func (s *Store) Exists(sum core.Checksum, typ ObjectType) bool {
	_, err := os.Stat(s.objectPath(sum, typ))
	return err == nil
}

// HasCommit reports whether the commit object for a checksum is present
func (s *Store) HasCommit(sum core.Checksum) bool {
	return s.Exists(sum, ObjectTypeCommit)
}
