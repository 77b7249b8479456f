package vcsurl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	gitsight "github.com/gitsight/go-vcsurl"
)

// Repository holds the coordinates of a repository parsed from a URL.
type Repository struct {
	Host      string
	Namespace string
	Name      string
	Raw       string
}

// FullName returns "<namespace>/<name>".
func (r *Repository) FullName() string {
	return r.Namespace + "/" + r.Name
}

// define allows schemes: http, https and ssh
var validSchemes = []string{"http", "https", "ssh"}

// function to check whether the scheme is valid
func isValidScheme(scheme string) bool {
	for _, validScheme := range validSchemes {
		if scheme == validScheme {
			return true
		}
	}
	return false
}

var scpLikeURL = regexp.MustCompile(`^(?:[^@/]+@)?([^:/]+):(.*)$`)

// GetPathDirs splits the URL path into non-empty segments.
func GetPathDirs(path string) []string {
	var pathDirs []string
	for _, dir := range strings.Split(path, "/") {
		if dir != "" {
			pathDirs = append(pathDirs, dir)
		}
	}
	return pathDirs
}

// Parse extracts the repository coordinates from a clone or browse URL.
// Well-known hosts go through go-vcsurl; any other host, such as a GitHub
// Enterprise server, is parsed as "<scheme>://<host>/<namespace>/<name>[/...]".
func Parse(raw string) (*Repository, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("repository URL is empty")
	}

	if info, err := gitsight.Parse(raw); err == nil && info.Username != "" && info.Name != "" {
		return &Repository{
			Host:      string(info.Host),
			Namespace: info.Username,
			Name:      info.Name,
			Raw:       raw,
		}, nil
	}

	return parseGeneric(raw)
}

func parseGeneric(raw string) (*Repository, error) {
	spec := raw
	// preparse special type of URLs like "git@<host>:<path>"
	if !strings.Contains(spec, "://") {
		if parts := scpLikeURL.FindStringSubmatch(spec); len(parts) == 3 {
			spec = fmt.Sprintf("ssh://%s/%s", parts[1], parts[2])
		}
	}

	u, err := url.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid repository URL %q: %w", raw, err)
	}
	if !isValidScheme(u.Scheme) {
		return nil, fmt.Errorf("unsupported scheme in repository URL %q", raw)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("repository URL %q has no host", raw)
	}

	pathDirs := GetPathDirs(u.Path)
	if len(pathDirs) < 2 {
		return nil, fmt.Errorf("repository URL %q does not name an owner and a repository", raw)
	}

	name := strings.TrimSuffix(pathDirs[1], ".git")
	if name == "" {
		return nil, fmt.Errorf("repository URL %q has an empty repository name", raw)
	}

	return &Repository{
		Host:      u.Hostname(),
		Namespace: pathDirs[0],
		Name:      name,
		Raw:       raw,
	}, nil
}
