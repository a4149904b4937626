package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsvault/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRun_PrintsReport(t *testing.T) {
	out, err := execute(t, "run",
		"--sender", "Alice", "--receiver", "Bob", "--amount", "1000000",
		"--clock-step", "1ms", "--limit", "3", "--log-level", "error")
	require.NoError(t, err)

	assert.Regexp(t, `Profile:\s+linear`, out)
	assert.Regexp(t, `Samples:\s+30`, out)
	assert.Regexp(t, `Failures:\s+0`, out)
	assert.Contains(t, out, "... 27 more")
	assert.False(t, appCtx.Gate.IsActive(), "gate must be released after run")
}

func TestRun_RejectsBadAmount(t *testing.T) {
	_, err := execute(t, "run", "--sender", "Alice", "--receiver", "Bob", "--amount", "1.5", "--log-level", "error")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRun_ExportAndShowSealed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	out, err := execute(t, "run", "--profile", "fixed",
		"--sender", "Alice", "--receiver", "Bob", "--amount", "5",
		"--clock-step", "1ms", "--quiet", "--out", path, "-p", "pw", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "exported "+path)
	assert.NotContains(t, out, "Samples:")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Alice")

	out, err = execute(t, "show", path, "-p", "pw")
	require.NoError(t, err)
	assert.Regexp(t, `Profile:\s+fixed`, out)
	assert.Regexp(t, `Sender:\s+Alice`, out)

	_, err = execute(t, "show", path)
	assert.Error(t, err)
}

func TestSample_SingleIndex(t *testing.T) {
	out, err := execute(t, "sample", "18", "--profile", "fixed")
	require.NoError(t, err)
	assert.Contains(t, out, "power:     6840")
	assert.Contains(t, out, "frequency: 0.00009999")
}

func TestSample_StrictRejectsZeroElapsed(t *testing.T) {
	_, err := execute(t, "sample", "18", "--elapsed", "0")
	assert.ErrorIs(t, err, domain.ErrSampleCompute)
}

func TestProfiles_ListsPresets(t *testing.T) {
	out, err := execute(t, "profiles", "--profile", "fixed")
	require.NoError(t, err)
	assert.Contains(t, out, "linear")
	assert.Contains(t, out, "fixed *")
	assert.Contains(t, out, "[18,48)")
}

func TestRoot_UnknownProfile(t *testing.T) {
	_, err := execute(t, "profiles", "--profile", "quantum")
	assert.Error(t, err)
}

func TestRoot_ProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: fixed\nname: custom\n"), 0o600))

	out, err := execute(t, "sample", "18", "--profile-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "power:     6840")
}
