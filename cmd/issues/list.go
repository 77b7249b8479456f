package issues

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	internalissues "github.com/scan-io-git/gctl/internal/issues"
	"github.com/scan-io-git/gctl/pkg/shared"
	"github.com/scan-io-git/gctl/pkg/shared/errors"
	"github.com/scan-io-git/gctl/pkg/shared/logger"
)

var (
	listOpts TargetOptions

	// ListCmd represents the command to list the open GitHub issues of a repository.
	ListCmd = &cobra.Command{
		Use:                   "list [--token TOKEN] [--owner OWNER] [--repo REPO] [--repo-url URL]",
		Short:                 "List the open GitHub issues of a repository",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := logger.NewLogger(AppConfig, "issues-list")

			if err := resolveTarget(&listOpts, AppConfig, lg); err != nil {
				return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), 1)
			}
			if err := validateListArgs(&listOpts, args); err != nil {
				if !shared.HasFlags(cmd.Flags()) {
					_ = cmd.Help()
				}
				return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), 1)
			}

			tracker := newTracker(&listOpts, AppConfig, lg)
			issues, err := newReconciler(tracker, AppConfig, lg).ListAll(cmd.Context())
			if err != nil {
				lg.Error("failed to list issues", "error", err)
				return errors.NewCommandError(fmt.Errorf("list issues failed: %w", err), 2)
			}

			printIssues(cmd.OutOrStdout(), issues)
			return nil
		},
	}
)

// printIssues writes a concise table of issues.
func printIssues(w io.Writer, issues []internalissues.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found")
		return
	}

	fmt.Fprintf(w, "#  %-8s  %-7s  %s\n", "NUMBER", "STATE", "TITLE")
	for _, it := range issues {
		fmt.Fprintf(w, "-  %-8d  %-7s  %s\n", it.Number, it.State, it.Title)
	}
}

func init() {
	addTargetFlags(ListCmd, &listOpts)
	ListCmd.Flags().BoolP("help", "h", false, "Show help for issues list command.")
}
