package issues

import (
	"github.com/spf13/cobra"

	"github.com/scan-io-git/gctl/pkg/shared/config"
)

// TargetOptions identifies the repository and credentials shared by the issues subcommands.
type TargetOptions struct {
	Token   string `json:"-"`
	Owner   string `json:"owner,omitempty"`
	Repo    string `json:"repo,omitempty"`
	RepoURL string `json:"repo_url,omitempty"`
}

var (
	AppConfig *config.Config

	// IssuesCmd groups the commands working with repository issues.
	IssuesCmd = &cobra.Command{
		Use:                   "issues [command]",
		Short:                 "Create and list GitHub issues for SARIF findings",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
	}
)

// Init wires config into this command group.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func init() {
	IssuesCmd.AddCommand(NewCmd, ListCmd)
}

func addTargetFlags(cmd *cobra.Command, o *TargetOptions) {
	cmd.Flags().StringVar(&o.Token, "token", "", "GitHub token (defaults to github.token in config, $GCTL_GITHUB_TOKEN or $GITHUB_TOKEN)")
	cmd.Flags().StringVar(&o.Owner, "owner", "", "Repository owner (defaults to $GITHUB_REPOSITORY_OWNER, then the git origin remote)")
	cmd.Flags().StringVar(&o.Repo, "repo", "", "Repository name (defaults to ${GITHUB_REPOSITORY#*/}, then the git origin remote)")
	cmd.Flags().StringVar(&o.RepoURL, "repo-url", "", "Optional: repository URL to take the owner and name from")
}
