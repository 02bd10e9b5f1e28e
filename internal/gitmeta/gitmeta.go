// Package gitmeta provides the small amount of git awareness relkit needs:
// detecting the repository URL for release-link synthesis and creating
// release tags. It operates on the local repository only; nothing touches the
// network.
package gitmeta

import (
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// ErrTagExists reports that the release tag is already present.
var ErrTagExists = errors.New("tag already exists")

// DetectRepoURL returns the https form of the origin remote URL of the
// repository containing dir. SSH-style remotes (git@host:owner/repo.git) are
// normalized and a trailing .git is stripped, so the result can be used as a
// base for release-tag links.
func DetectRepoURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening repository: %w", err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", fmt.Errorf("resolving origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}
	return NormalizeRemoteURL(urls[0]), nil
}

// NormalizeRemoteURL converts a git remote URL into a plain https repository
// URL suitable for link synthesis.
func NormalizeRemoteURL(raw string) string {
	url := strings.TrimSpace(raw)

	if strings.HasPrefix(url, "git@") {
		// git@host:owner/repo -> https://host/owner/repo
		hostPath := strings.TrimPrefix(url, "git@")
		hostPath = strings.Replace(hostPath, ":", "/", 1)
		url = "https://" + hostPath
	}
	url = strings.TrimPrefix(url, "ssh://git@")
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		url = "https://" + url
	}

	url = strings.TrimSuffix(url, "/")
	url = strings.TrimSuffix(url, ".git")
	return url
}

// CreateTag creates a lightweight tag with the given name pointing at HEAD of
// the repository containing dir.
func CreateTag(dir, name string) error {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("resolving HEAD: %w", err)
	}

	if _, err := repo.CreateTag(name, head.Hash(), nil); err != nil {
		if errors.Is(err, git.ErrTagExists) {
			return fmt.Errorf("%w: %s", ErrTagExists, name)
		}
		return fmt.Errorf("creating tag %s: %w", name, err)
	}
	return nil
}
