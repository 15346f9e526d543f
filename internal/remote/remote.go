// Package remote reads the remotes configured in an OSTree repository.
// OSTree stores them in the repository's config file as git-style sections:
//
//	[remote "fedora"]
//	url=https://ostree.fedoraproject.org
//	gpg-verify=true
package remote

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cgwalters/sync-ostree-to-containers/internal/core"
)

type Remote struct {
	Name      string
	URL       string
	GPGVerify bool // ostree defaults to signature verification
}

// ListRemotes returns all remotes configured in the repository, in the order
// their sections appear in the config file.
func ListRemotes(repoPath string) ([]Remote, error) {
	configPath := filepath.Join(repoPath, "config")

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository config: %w", err)
	}
	defer file.Close()

	var remotes []Remote
	var current *Remote

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[remote \"") && strings.HasSuffix(line, "\"]") {
			name := line[9 : len(line)-2]
			remotes = append(remotes, Remote{Name: name, GPGVerify: true})
			current = &remotes[len(remotes)-1]
			continue
		}

		if strings.HasPrefix(line, "[") {
			current = nil // [core] and other sections
			continue
		}

		if current == nil {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "url":
			current.URL = value
		case "gpg-verify":
			current.GPGVerify = value == "true"
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return remotes, nil
}

// GetRemote returns a specific remote by name.
func GetRemote(repoPath, name string) (*Remote, error) {
	remotes, err := ListRemotes(repoPath)
	if err != nil {
		return nil, err
	}

	for _, r := range remotes {
		if r.Name == name {
			return &r, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", core.ErrRemoteNotFound, name)
}
