package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alglobo/exgen/pkg/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	c := NewRootCmd()
	c.SetOut(out)
	c.SetErr(out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestRootGenerates(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "test", "3", "--dir", dir)
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "example-test.csv"))
	require.NoError(t, err)
	assert.Equal(t, "1,1.00,1.00\n2,2.00,2.00\n3,3.00,3.00\n", string(b))
}

func TestRootInvalidCount(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "test", "abc", "--dir", dir)
	var invalidArg *fixture.InvalidArgumentError
	if assert.ErrorAs(t, err, &invalidArg) {
		assert.Equal(t, "count", invalidArg.Arg)
	}

	_, err = os.Stat(filepath.Join(dir, "example-test.csv"))
	assert.True(t, os.IsNotExist(err), "no file must be created on invalid arguments")
}

func TestRootMissingSuffix(t *testing.T) {
	_, err := execute(t, "--dir", t.TempDir())
	var invalidArg *fixture.InvalidArgumentError
	if assert.ErrorAs(t, err, &invalidArg) {
		assert.Equal(t, "suffix", invalidArg.Arg)
	}
}

func TestRootUnknownFlag(t *testing.T) {
	_, err := execute(t, "test", "--bogus")
	var invalidArg *fixture.InvalidArgumentError
	assert.ErrorAs(t, err, &invalidArg)
}

func TestRootMissingDir(t *testing.T) {
	_, err := execute(t, "test", "3", "--dir", filepath.Join(t.TempDir(), "missing"))
	var accessErr *fixture.FileAccessError
	assert.ErrorAs(t, err, &accessErr)
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(t.TempDir(), "exgen.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("dir: "+dir+"\nlog-level: warn\n"), 0644))

	_, err := execute(t, "cfg", "2", "--config", cfgFile)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "example-cfg.csv"))

	// an explicitly given config file must exist
	_, err = execute(t, "cfg", "2", "--config", filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestRootEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXGEN_DIR", dir)

	_, err := execute(t, "env", "1")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "example-env.csv"))
}

func TestRootInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "test", "1", "--dir", t.TempDir(), "--log-level", "loud")
	var invalidArg *fixture.InvalidArgumentError
	if assert.ErrorAs(t, err, &invalidArg) {
		assert.Equal(t, "log-level", invalidArg.Arg)
	}
}

func TestVerifyCmd(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "v", "5", "--dir", dir)
	require.NoError(t, err)

	out, err := execute(t, "verify", filepath.Join(dir, "example-v.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "payments:   5")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("1,1.00,1.00\n3,3.00,3.00\n"), 0644))
	out, err = execute(t, "verify", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "missing:    1")

	_, err = execute(t, "verify")
	var invalidArg *fixture.InvalidArgumentError
	assert.ErrorAs(t, err, &invalidArg)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version: ")
}
