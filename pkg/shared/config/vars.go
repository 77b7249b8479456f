package config

const (
	EnvLogLevel           = "GCTL_LOG_LEVEL"
	EnvGithubToken        = "GCTL_GITHUB_TOKEN"
	EnvGithubActionsToken = "GITHUB_TOKEN"
	EnvGithubAPIURL       = "GCTL_GITHUB_API_URL"

	DefaultConfigFile   = "config.yml"
	DefaultGitHubAPIURL = "https://api.github.com"
	DefaultPerPage      = 50
	DefaultMaxPages     = 1000
	DefaultS3Region     = "us-east-1"
)

var DefaultLabels = []string{"bug"}
