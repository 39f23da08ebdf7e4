package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvvec/internal/script"
)

const scenarioPath = "../../internal/script/testdata/scenario.yaml"

// TestRun_Version verifies the version subcommand writes to stdout.
func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out, &errOut))
	require.Equal(t, "lvvec dev (unknown)\n", out.String())
}

// TestRun_Policy verifies the printed growth schedule.
func TestRun_Policy(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"--no-color", "policy", "--steps", "3"}, &out, &errOut))

	s := out.String()
	require.Contains(t, s, "grow ×1.25, shrink at ×0.25, floor 16")
	require.Contains(t, s, "cap 16       grow -> 20       shrink -> 16")
	require.Contains(t, s, "cap 20       grow -> 25       shrink -> 16")
	require.Contains(t, s, "cap 25       grow -> 31       shrink -> 16")
}

// TestRun_PolicyBadArgs verifies invalid policy flags fail.
func TestRun_PolicyBadArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"policy", "--steps", "0"}, &out, &errOut)
	require.ErrorIs(t, err, errBadPolicyArgs)
	require.Contains(t, errOut.String(), "command failed")
}

// TestRun_Replay verifies a passing script renders its trace and logs a summary.
func TestRun_Replay(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"--no-color", "replay", scenarioPath}, &out, &errOut))

	s := out.String()
	require.Contains(t, s, "basic-scenario")
	require.Contains(t, s, `push "1"`)
	require.Contains(t, s, "index out of range")
	require.Contains(t, errOut.String(), "replayed")
}

// TestRun_ReplayVerbose verifies --verbose enables debug logging.
func TestRun_ReplayVerbose(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-v", "--no-color", "replay", scenarioPath}, &out, &errOut))
	require.Contains(t, errOut.String(), "loaded script")
}

// TestRun_ReplayExpectationFails verifies a failing expect yields an error and a partial trace.
func TestRun_ReplayExpectationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	src := "name: bad\nops:\n  - push: a\n  - expect: {len: 5}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var out, errOut bytes.Buffer
	err := run([]string{"--no-color", "replay", path}, &out, &errOut)
	require.ErrorIs(t, err, script.ErrExpectation)
	require.Contains(t, out.String(), "expect len=5")
}

// TestRun_ReplayMissingArgs verifies replay requires at least one script.
func TestRun_ReplayMissingArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, run([]string{"replay"}, &out, &errOut))
}
