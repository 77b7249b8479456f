package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote consulted when no repository coordinates are given.
const DefaultRemote = "origin"

// struct with repository metadata
type RepositoryMetadata struct {
	BranchName     *string
	CommitHash     *string
	RemoteURL      *string
	RepoRootFolder string
}

// CollectRepositoryMetadata function collects repository metadata
// that includes branch name, commit hash, the URL of the given remote and repository root folder
func CollectRepositoryMetadata(sourceFolder, remoteName string) (*RepositoryMetadata, error) {
	if sourceFolder == "" {
		return &RepositoryMetadata{}, fmt.Errorf("source folder is not set")
	}
	if remoteName == "" {
		remoteName = DefaultRemote
	}

	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(sourceFolder),
	}

	repoRootFolder, err := findGitRepositoryPath(sourceFolder)
	if err != nil {
		return md, err
	}
	md.RepoRootFolder = filepath.Clean(repoRootFolder)

	repo, err := git.PlainOpen(repoRootFolder)
	if err != nil {
		return md, fmt.Errorf("failed to open repository: %w", err)
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branchName := head.Name().Short()
			md.BranchName = &branchName
		}

		hash := head.Hash().String()
		md.CommitHash = &hash
	}

	if remote, err := repo.Remote(remoteName); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			remoteURL := cfg.URLs[0]
			md.RemoteURL = &remoteURL
		}
	}

	return md, nil
}

// RemoteURL returns the first URL of the named remote of the repository containing sourceFolder.
func RemoteURL(sourceFolder, remoteName string) (string, error) {
	md, err := CollectRepositoryMetadata(sourceFolder, remoteName)
	if err != nil {
		return "", err
	}
	if md.RemoteURL == nil || *md.RemoteURL == "" {
		return "", fmt.Errorf("%w: %q in %s", ErrNoRemote, remoteName, md.RepoRootFolder)
	}
	return *md.RemoteURL, nil
}
