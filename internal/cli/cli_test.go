//go:build !tinygo

package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockbox/internal/config"
	"lockbox/internal/record"
)

func TestStepsFor(t *testing.T) {
	assert.Equal(t, uint64(0), stepsFor(0, 40))
	assert.Equal(t, uint64(1), stepsFor(40, 40))
	assert.Equal(t, uint64(2), stepsFor(41, 40))
}

func TestRunFlagsOverrideOnlyWhenSet(t *testing.T) {
	var f runFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse([]string{"--five-sec", "600", "--keys", "1234O"}))

	c := config.Default()
	c.Hz = 10
	f.apply(fs, &c)

	assert.Equal(t, 600, c.FiveSec)
	assert.Equal(t, "1234O", c.Keys)
	assert.Equal(t, 10, c.Hz)
}

func TestRunCommandRecordsTrace(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "run.sqlite3")
	out := &bytes.Buffer{}

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{
		"run",
		"--env", filepath.Join(dir, "none.env"),
		"--hz", "1000",
		"--ticks-per-step", "100",
		"--debounce", "3",
		"--ticks", "600",
		"--keys", "1234O",
		"--record", trace,
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "lockbox boot")

	events, err := record.Read(trace)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, record.KindKey, events[0].Kind)
	assert.Equal(t, "digit(1)", events[0].Key)

	out.Reset()
	rootCmd.SetArgs([]string{"trace", trace, "--kind", "transition"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "lock -> solenoid")
}

func TestRunCommandChangesPasscode(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "reprovision.sqlite3")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"run",
		"--env", filepath.Join(dir, "none.env"),
		"--hz", "1000",
		"--ticks-per-step", "100",
		"--debounce", "3",
		"--bounce", "0",
		"--five-sec", "40",
		"--ticks", "800",
		"--keys", "1234O..9876L",
		"--record", trace,
	})
	require.NoError(t, rootCmd.Execute())

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"trace", trace, "--kind", "transition"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "normal -> prelock")
	assert.Contains(t, out.String(), "prelock -> lock")
}
