// Package ci provides helpers for discovering CI metadata.
package ci

import (
	"os"
	"strconv"
	"strings"
)

// LookupFunc fetches environment variables and defaults to os.Getenv.
type LookupFunc func(string) string

// Environment captures the GitHub Actions metadata relevant to filing issues.
type Environment struct {
	CI                 bool   // CI reports whether the execution runs inside a CI environment.
	CommitHash         string // CommitHash is the tip commit that triggered the job.
	ServerURL          string // ServerURL is the scheme and host of the GitHub server.
	ReferenceName      string // ReferenceName is the short reference or branch name.
	RepositoryName     string // RepositoryName is the repository slug without owner.
	RepositoryFullName string // RepositoryFullName is the owner-qualified repository name.
	Namespace          string // Namespace is the owner or organization.
}

// Detected reports whether any GitHub Actions repository metadata was found.
func (e Environment) Detected() bool {
	return e.RepositoryFullName != "" || e.Namespace != "" || e.CommitHash != ""
}

// FromEnvironment reads the GitHub Actions variables of the process environment.
func FromEnvironment() Environment {
	return fromLookup(os.Getenv)
}

// fromLookup builds the Environment from GitHub-specific variables.
// See https://docs.github.com/en/actions/reference/workflows-and-actions/variables.
func fromLookup(lookup LookupFunc) Environment {
	if lookup == nil {
		lookup = os.Getenv
	}
	ci, _ := strconv.ParseBool(lookup("CI"))

	fullName := strings.TrimSpace(lookup("GITHUB_REPOSITORY"))
	namespace, repoName := "", fullName
	if i := strings.Index(fullName, "/"); i >= 0 {
		namespace, repoName = fullName[:i], fullName[i+1:]
	}
	if owner := strings.TrimSpace(lookup("GITHUB_REPOSITORY_OWNER")); owner != "" {
		namespace = owner
	}

	return Environment{
		CI:                 ci,
		CommitHash:         lookup("GITHUB_SHA"),
		ServerURL:          lookup("GITHUB_SERVER_URL"),
		ReferenceName:      lookup("GITHUB_REF_NAME"),
		RepositoryName:     repoName,
		RepositoryFullName: fullName,
		Namespace:          namespace,
	}
}
