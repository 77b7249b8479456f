package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/gctl/pkg/shared/errors"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(errors.NewCommandError(stderrors.New("remote failed"), 2)))
	assert.Equal(t, 1, exitCode(fmt.Errorf("wrapped: %w", errors.NewCommandError(stderrors.New("usage"), 1))))
	assert.Equal(t, 1, exitCode(stderrors.New("unknown flag: --nope")))
}

func TestInitConfig(t *testing.T) {
	t.Setenv("GCTL_GITHUB_API_URL", "")
	dir := t.TempDir()
	t.Cleanup(func() { cfgFile = "" })

	cfgFile = filepath.Join(dir, "absent.yml")
	require.NoError(t, initConfig(false))
	require.NotNil(t, AppConfig)
	assert.Equal(t, "https://api.github.com", AppConfig.GitHub.APIURL)

	err := initConfig(true)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalid, []byte("github:\n  per_page: 500\n"), 0o644))
	cfgFile = invalid
	err = initConfig(true)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	retrying := filepath.Join(dir, "retrying.yml")
	require.NoError(t, os.WriteFile(retrying, []byte("http_client:\n  retry_count: 3\n"), 0o644))
	cfgFile = retrying
	err = initConfig(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry_count")
	assert.Equal(t, 1, exitCode(err))
}
