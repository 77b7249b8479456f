package issues

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	internalissues "github.com/scan-io-git/gctl/internal/issues"
	"github.com/scan-io-git/gctl/internal/source"
	"github.com/scan-io-git/gctl/pkg/shared"
	"github.com/scan-io-git/gctl/pkg/shared/errors"
	"github.com/scan-io-git/gctl/pkg/shared/logger"
)

// NewOptions holds flags for the issues new command.
type NewOptions struct {
	TargetOptions
	Files     []string `json:"files,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
}

// defaultFiles are searched when no --file is given.
var defaultFiles = []string{"./result.sarif", "./results.sarif"}

var (
	newOpts NewOptions

	// Example usage for the issues new command
	exampleNewUsage = `  # Create issues for the default reports (./result.sarif, ./results.sarif) of the current repository
  gctl issues new --token "$GITHUB_TOKEN"

  # Create issues from several reports for an explicit repository
  gctl issues new -f trivy.sarif -f semgrep.sarif --owner scan-io-git --repo scan-io

  # Take the repository from its URL and read a report from S3
  gctl issues new -f s3://reports/app/results.sarif --repo-url https://github.com/scan-io-git/scan-io

  # Override labels and assignees
  gctl issues new -f results.sarif --labels security,sarif --assignees alice,bob

  # Using environment variables (GitHub Actions)
  GITHUB_TOKEN=... GITHUB_REPOSITORY=scan-io-git/scan-io gctl issues new -f results.sarif`

	// NewCmd represents the command to create GitHub issues from SARIF files.
	NewCmd = &cobra.Command{
		Use:                   "new [-f PATH]... [--token TOKEN] [--owner OWNER] [--repo REPO] [--repo-url URL] [--labels label[,label...]] [--assignees user[,user...]]",
		Short:                 "Create one GitHub issue per new SARIF finding",
		Example:               exampleNewUsage,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE:                  runNew,
	}
)

// runNew is the main execution function for the issues new command.
func runNew(cmd *cobra.Command, args []string) error {
	lg := logger.NewLogger(AppConfig, "issues-new")

	if err := resolveTarget(&newOpts.TargetOptions, AppConfig, lg); err != nil {
		lg.Error("failed to resolve repository", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), 1)
	}

	gh := githubConfig(AppConfig)
	newOpts.Labels = resolveList(newOpts.Labels, cmd.Flags().Changed("labels"), gh.Labels)
	newOpts.Assignees = resolveList(newOpts.Assignees, cmd.Flags().Changed("assignees"), gh.Assignees)
	if !cmd.Flags().Changed("file") {
		newOpts.Files = existingFiles(defaultFiles, lg)
	}

	if err := validateNewArgs(&newOpts, args); err != nil {
		if !shared.HasFlags(cmd.Flags()) {
			_ = cmd.Help()
		}
		lg.Error("invalid arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), 1)
	}

	tracker := newTracker(&newOpts.TargetOptions, AppConfig, lg)
	reconciler := newReconciler(tracker, AppConfig, lg.Named("reconciler"))
	workflow := internalissues.NewWorkflow(source.New(AppConfig, lg.Named("source")), reconciler, internalissues.WorkflowOptions{
		Assignees: newOpts.Assignees,
		Labels:    newOpts.Labels,
	}, lg)

	lg.Info("creating issues", "owner", newOpts.Owner, "repo", newOpts.Repo, "files", len(newOpts.Files))
	summary, err := workflow.Run(cmd.Context(), newOpts.Files)
	if err != nil {
		return errors.NewCommandError(err, 2)
	}

	lg.Info("issues created from SARIF findings", "created", summary.Created, "skipped", summary.Skipped)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %d issue(s), skipped %d existing, from %d finding(s) in %d file(s)\n",
		summary.Created, summary.Skipped, summary.Candidates, summary.Files)
	return nil
}

// existingFiles keeps the paths that exist. When none does, all paths are returned
// so that the read error names them. Every dropped path is reported as a warning.
func existingFiles(paths []string, lg hclog.Logger) []string {
	var found, missing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		} else {
			missing = append(missing, p)
		}
	}
	if len(found) == 0 {
		return append([]string(nil), paths...)
	}
	for _, p := range missing {
		lg.Warn("default SARIF file not found, skipping", "path", p)
	}
	return found
}

func init() {
	addTargetFlags(NewCmd, &newOpts.TargetOptions)
	// --file supports multiple usages (e.g., -f a.sarif -f b.sarif); local paths and s3://bucket/key
	NewCmd.Flags().StringArrayVarP(&newOpts.Files, "file", "f", defaultFiles, "SARIF file to read (repeatable, local path or s3://bucket/key)")
	// --labels supports multiple usages (e.g., --labels bug --labels security) or comma-separated values
	NewCmd.Flags().StringSliceVar(&newOpts.Labels, "labels", nil, "Optional: labels to assign to created issues (defaults to github.labels in config, then 'bug')")
	// --assignees supports multiple usages or comma-separated values
	NewCmd.Flags().StringSliceVar(&newOpts.Assignees, "assignees", nil, "Optional: assignees (GitHub logins) for created issues (defaults to github.assignees in config)")
	NewCmd.Flags().BoolP("help", "h", false, "Show help for issues new command.")
}
