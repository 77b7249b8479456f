package issues

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalissues "github.com/scan-io-git/gctl/internal/issues"
	"github.com/scan-io-git/gctl/pkg/shared/config"
)

func clearGitHubEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_REPOSITORY", "")
	t.Setenv("GITHUB_REPOSITORY_OWNER", "")
}

func TestApplyEnvironmentFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		opts      TargetOptions
		wantOwner string
		wantRepo  string
	}{
		{
			name:      "owner and repository from env",
			env:       map[string]string{"GITHUB_REPOSITORY_OWNER": "scan-io-git", "GITHUB_REPOSITORY": "scan-io-git/scan-io"},
			wantOwner: "scan-io-git",
			wantRepo:  "scan-io",
		},
		{
			name:      "owner derived from GITHUB_REPOSITORY",
			env:       map[string]string{"GITHUB_REPOSITORY": "acme/app"},
			wantOwner: "acme",
			wantRepo:  "app",
		},
		{
			name:      "repository without slash",
			env:       map[string]string{"GITHUB_REPOSITORY": "app"},
			wantOwner: "",
			wantRepo:  "app",
		},
		{
			name:      "flags win",
			env:       map[string]string{"GITHUB_REPOSITORY_OWNER": "env-owner", "GITHUB_REPOSITORY": "env-owner/env-repo"},
			opts:      TargetOptions{Owner: "flag-owner", Repo: "flag-repo"},
			wantOwner: "flag-owner",
			wantRepo:  "flag-repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearGitHubEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			opts := tt.opts
			ApplyEnvironmentFallbacks(&opts)
			assert.Equal(t, tt.wantOwner, opts.Owner)
			assert.Equal(t, tt.wantRepo, opts.Repo)
		})
	}
}

func TestApplyConfigFallbacks(t *testing.T) {
	cfg := &config.Config{GitHub: config.GitHub{Token: "cfg-token"}}

	opts := TargetOptions{}
	ApplyConfigFallbacks(&opts, cfg)
	assert.Equal(t, "cfg-token", opts.Token)

	opts = TargetOptions{Token: "flag-token"}
	ApplyConfigFallbacks(&opts, cfg)
	assert.Equal(t, "flag-token", opts.Token)

	opts = TargetOptions{}
	ApplyConfigFallbacks(&opts, nil)
	assert.Empty(t, opts.Token)
}

func TestApplyRepoURLFallbacks(t *testing.T) {
	lg := hclog.NewNullLogger()

	opts := TargetOptions{RepoURL: "https://github.com/scan-io-git/scan-io.git"}
	require.NoError(t, ApplyRepoURLFallbacks(&opts, lg))
	assert.Equal(t, "scan-io-git", opts.Owner)
	assert.Equal(t, "scan-io", opts.Repo)

	opts = TargetOptions{Owner: "fork", RepoURL: "git@github.com:scan-io-git/scan-io.git"}
	require.NoError(t, ApplyRepoURLFallbacks(&opts, lg))
	assert.Equal(t, "fork", opts.Owner)
	assert.Equal(t, "scan-io", opts.Repo)

	opts = TargetOptions{RepoURL: "https://github.com/only-owner"}
	assert.Error(t, ApplyRepoURLFallbacks(&opts, lg))

	opts = TargetOptions{Owner: "o", Repo: "r", RepoURL: "not a url"}
	assert.NoError(t, ApplyRepoURLFallbacks(&opts, lg), "URL is ignored when coordinates are complete")
}

func TestApplyGitMetadataFallbacks(t *testing.T) {
	repoDir := t.TempDir()
	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{"git@github.com:scan-io-git/demo.git"}})
	require.NoError(t, err)

	sub := filepath.Join(repoDir, "reports")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	opts := TargetOptions{}
	ApplyGitMetadataFallbacks(&opts, sub, hclog.NewNullLogger())
	assert.Equal(t, "scan-io-git", opts.Owner)
	assert.Equal(t, "demo", opts.Repo)

	opts = TargetOptions{Repo: "explicit"}
	ApplyGitMetadataFallbacks(&opts, sub, hclog.NewNullLogger())
	assert.Equal(t, "scan-io-git", opts.Owner)
	assert.Equal(t, "explicit", opts.Repo)

	opts = TargetOptions{}
	ApplyGitMetadataFallbacks(&opts, t.TempDir(), hclog.NewNullLogger())
	assert.Empty(t, opts.Owner)
	assert.Empty(t, opts.Repo)
}

func TestResolveList(t *testing.T) {
	configured := []string{"bug"}
	assert.Equal(t, configured, resolveList(nil, false, configured))
	assert.Equal(t, []string{"security"}, resolveList([]string{"security"}, true, configured))
	assert.Empty(t, resolveList([]string{}, true, configured))
}

func TestNewReconcilerUsesConfig(t *testing.T) {
	zero := 0
	cfg := &config.Config{GitHub: config.GitHub{PerPage: 1, MaxPages: &zero}}

	tracker := &countingTracker{pages: 3}
	issues, err := newReconciler(tracker, cfg, hclog.NewNullLogger()).ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, issues, 3)
	assert.Equal(t, []int{1, 1, 1, 1}, tracker.perPage)
}

// countingTracker serves pages of one issue each and records the requested page size.
type countingTracker struct {
	pages   int
	perPage []int
}

func (c *countingTracker) ListIssues(_ context.Context, page, perPage int) ([]internalissues.Issue, error) {
	c.perPage = append(c.perPage, perPage)
	if page > c.pages {
		return nil, nil
	}
	return []internalissues.Issue{{Number: page, Title: "t"}}, nil
}

func (c *countingTracker) CreateIssue(context.Context, internalissues.Candidate) (*internalissues.Issue, error) {
	return nil, nil
}

func TestExistingFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "results.sarif")
	require.NoError(t, os.WriteFile(present, []byte("{}"), 0o644))
	absent := filepath.Join(dir, "result.sarif")

	var logs bytes.Buffer
	lg := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Warn})

	assert.Equal(t, []string{present}, existingFiles([]string{absent, present}, lg))
	assert.Contains(t, logs.String(), "default SARIF file not found, skipping")
	assert.Contains(t, logs.String(), absent)
	assert.NotContains(t, logs.String(), present)

	logs.Reset()
	assert.Equal(t, []string{absent}, existingFiles([]string{absent}, lg))
	assert.Empty(t, logs.String())
}

func TestPrintIssues(t *testing.T) {
	var out bytes.Buffer
	printIssues(&out, nil)
	assert.Equal(t, "No issues found\n", out.String())

	out.Reset()
	printIssues(&out, []internalissues.Issue{{Number: 12, State: "open", Title: "CVE-2023-25173"}})
	assert.Equal(t,
		"#  NUMBER    STATE    TITLE\n-  12        open     CVE-2023-25173\n",
		out.String())
}
