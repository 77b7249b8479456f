package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/gctl/pkg/shared"
)

func TestPrintVersionInfo(t *testing.T) {
	versions := &shared.Versions{Version: "1.2.0", GolangVersion: "go1.22.1", BuildTime: "2024-05-01T10:00:00Z"}

	var out bytes.Buffer
	require.NoError(t, printVersionInfo(&out, versions, false))
	assert.Equal(t, "Core Version: v1.2.0\nGo Version: go1.22.1\nBuild Time: 2024-05-01T10:00:00Z\n", out.String())

	out.Reset()
	require.NoError(t, printVersionInfo(&out, versions, true))
	assert.JSONEq(t, `{"version":"1.2.0","golang_version":"go1.22.1","build_time":"2024-05-01T10:00:00Z"}`, out.String())
}
