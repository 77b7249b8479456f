package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/gctl/cmd/issues"
	"github.com/scan-io-git/gctl/cmd/version"
	"github.com/scan-io-git/gctl/pkg/shared/config"
	"github.com/scan-io-git/gctl/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "gctl [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "gctl files GitHub issues for SARIF findings.",
		Long: `gctl reads static analysis results in SARIF format and files one GitHub issue
	per finding, skipping findings that already have an open issue with the same title.
	`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.Flags().Changed("config"))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(issues.IssuesCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps an error to the exit code carried by a CommandError, 1 otherwise.
func exitCode(err error) int {
	var cmdErr *errors.CommandError
	if stderrors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return 1
}

func initConfig(explicit bool) error {
	var err error

	if cfgFile == "" {
		cfgFile = config.DefaultConfigFile
	}
	AppConfig, err = config.LoadConfig(cfgFile, explicit)
	if err != nil {
		return errors.NewCommandError(fmt.Errorf("initializing config failed: %w", err), 1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		return errors.NewCommandError(err, 1)
	}

	version.Init(AppConfig)
	issues.Init(AppConfig)
	return nil
}
