package issues

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/gctl/internal/ci"
	"github.com/scan-io-git/gctl/internal/git"
	internalissues "github.com/scan-io-git/gctl/internal/issues"
	"github.com/scan-io-git/gctl/pkg/shared/config"
	"github.com/scan-io-git/gctl/pkg/shared/httpclient"
	"github.com/scan-io-git/gctl/pkg/shared/vcsurl"
)

const userAgent = "gctl"

// ApplyConfigFallbacks fills the token from the loaded configuration, which already carries env overrides.
func ApplyConfigFallbacks(o *TargetOptions, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if strings.TrimSpace(o.Token) == "" {
		o.Token = strings.TrimSpace(cfg.GitHub.Token)
	}
}

// ApplyEnvironmentFallbacks fills owner and repository from the GitHub Actions environment.
func ApplyEnvironmentFallbacks(o *TargetOptions) {
	env := ci.FromEnvironment()

	// Fallback: if --owner not provided, try $GITHUB_REPOSITORY_OWNER, then ${GITHUB_REPOSITORY%/*}
	if strings.TrimSpace(o.Owner) == "" && env.Namespace != "" {
		o.Owner = env.Namespace
	}

	// Fallback: if --repo not provided, try ${GITHUB_REPOSITORY#*/}
	if strings.TrimSpace(o.Repo) == "" && env.RepositoryName != "" {
		o.Repo = env.RepositoryName
	}
}

// ApplyRepoURLFallbacks fills missing owner and repository from --repo-url.
func ApplyRepoURLFallbacks(o *TargetOptions, logger hclog.Logger) error {
	if strings.TrimSpace(o.RepoURL) == "" || !missingCoordinates(o) {
		return nil
	}

	u, err := vcsurl.Parse(o.RepoURL)
	if err != nil {
		return err
	}
	fillCoordinates(o, u)
	logger.Debug("resolved repository from --repo-url", "owner", o.Owner, "repo", o.Repo)
	return nil
}

// ApplyGitMetadataFallbacks fills missing owner and repository from the origin remote of the git repository containing baseFolder.
func ApplyGitMetadataFallbacks(o *TargetOptions, baseFolder string, logger hclog.Logger) {
	if !missingCoordinates(o) {
		return
	}

	if strings.TrimSpace(baseFolder) == "" {
		// Use current working directory
		cwd, err := os.Getwd()
		if err != nil {
			logger.Debug("failed to get current working directory for git metadata extraction", "error", err)
			return
		}
		baseFolder = cwd
	}

	remoteURL, err := git.RemoteURL(baseFolder, git.DefaultRemote)
	if err != nil {
		logger.Debug("unable to read git remote", "error", err, "baseFolder", baseFolder)
		return
	}

	u, err := vcsurl.Parse(remoteURL)
	if err != nil {
		logger.Debug("unable to parse git remote URL", "error", err, "url", remoteURL)
		return
	}
	fillCoordinates(o, u)
	logger.Debug("resolved repository from git remote", "owner", o.Owner, "repo", o.Repo, "remote", git.DefaultRemote)
}

func missingCoordinates(o *TargetOptions) bool {
	return strings.TrimSpace(o.Owner) == "" || strings.TrimSpace(o.Repo) == ""
}

func fillCoordinates(o *TargetOptions, u *vcsurl.Repository) {
	if strings.TrimSpace(o.Owner) == "" {
		o.Owner = u.Namespace
	}
	if strings.TrimSpace(o.Repo) == "" {
		o.Repo = u.Name
	}
}

// resolveTarget applies every fallback in priority order: flags, config and environment, --repo-url, git origin.
func resolveTarget(o *TargetOptions, cfg *config.Config, logger hclog.Logger) error {
	ApplyConfigFallbacks(o, cfg)
	ApplyEnvironmentFallbacks(o)
	if err := ApplyRepoURLFallbacks(o, logger); err != nil {
		return err
	}
	ApplyGitMetadataFallbacks(o, "", logger)
	return nil
}

// resolveList picks the flag values when the flag was given and the configured values otherwise.
func resolveList(flagValues []string, changed bool, configured []string) []string {
	if changed {
		return flagValues
	}
	return configured
}

func githubConfig(cfg *config.Config) config.GitHub {
	if cfg == nil {
		c := &config.Config{}
		config.ApplyDefaults(c)
		return c.GitHub
	}
	return cfg.GitHub
}

// newTracker builds the GitHub tracker for o on top of the resty transport.
func newTracker(o *TargetOptions, cfg *config.Config, logger hclog.Logger) *internalissues.GitHubClient {
	client := httpclient.InitializeRestyClient(logger.Named("http"), cfg, userAgent)
	return internalissues.NewGitHubClient(httpclient.NewRestyTransport(client), internalissues.Target{
		APIURL: githubConfig(cfg).APIURL,
		Owner:  o.Owner,
		Repo:   o.Repo,
		Token:  o.Token,
	})
}

func newReconciler(tracker internalissues.Tracker, cfg *config.Config, logger hclog.Logger) *internalissues.Reconciler {
	gh := githubConfig(cfg)
	maxPages := internalissues.DefaultMaxPages
	if gh.MaxPages != nil {
		maxPages = *gh.MaxPages
	}
	return internalissues.NewReconciler(tracker, internalissues.ReconcilerOptions{
		PerPage:  gh.PerPage,
		MaxPages: maxPages,
	}, logger)
}
