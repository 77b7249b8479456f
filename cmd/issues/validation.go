package issues

import (
	"fmt"
	"strings"
)

// validateTarget checks that the repository coordinates and the token were resolved.
func validateTarget(o *TargetOptions) error {
	var missing []string
	if strings.TrimSpace(o.Token) == "" {
		missing = append(missing, "token")
	}
	if strings.TrimSpace(o.Owner) == "" {
		missing = append(missing, "owner")
	}
	if strings.TrimSpace(o.Repo) == "" {
		missing = append(missing, "repo")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}
	if strings.Contains(o.Owner, "/") || strings.Contains(o.Repo, "/") {
		return fmt.Errorf("'owner' and 'repo' must not contain '/': %q, %q", o.Owner, o.Repo)
	}
	return nil
}

// validateNewArgs validates the options of the issues new command.
func validateNewArgs(o *NewOptions, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected positional arguments: %s", strings.Join(args, " "))
	}
	if err := validateTarget(&o.TargetOptions); err != nil {
		return err
	}
	if len(o.Files) == 0 {
		return fmt.Errorf("at least one SARIF file is required")
	}
	for _, f := range o.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("'file' cannot be empty")
		}
	}
	return nil
}

// validateListArgs validates the options of the issues list command.
func validateListArgs(o *TargetOptions, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected positional arguments: %s", strings.Join(args, " "))
	}
	return validateTarget(o)
}
