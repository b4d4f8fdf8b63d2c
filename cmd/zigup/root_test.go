package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastline-tools/zigup/internal/resolve"
	"github.com/coastline-tools/zigup/internal/store"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"zigup"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func seedInstalled(t *testing.T, home string, versions ...string) store.Store {
	t.Helper()
	st := store.At(home)
	for _, v := range versions {
		require.NoError(t, os.MkdirAll(st.VersionDir(v), 0o755))
	}
	return st
}

func TestHomeCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)

	stdout, _, err := runCLI(t, "home")
	require.NoError(t, err)
	assert.Equal(t, home+"\n", stdout)
}

func TestListMarksPinnedVersion(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)
	seedInstalled(t, home, "0.12.0", "0.13.0")

	cwd := t.TempDir()
	chdir(t, cwd)
	require.NoError(t, resolve.WritePin(cwd, "0.13.0"))

	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = origNoColor })

	stdout, _, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  0.12.0\n")
	assert.Contains(t, stdout, "* 0.13.0\n")
}

func TestAddAlreadyInstalled(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)
	seedInstalled(t, home, "0.13.0")

	_, _, err := runCLI(t, "add", "0.13.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already installed")
}

func TestAddRequiresVersionArgument(t *testing.T) {
	_, _, err := runCLI(t, "add")
	require.Error(t, err)
}

func TestRemoveNotInstalled(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)

	_, _, err := runCLI(t, "remove", "0.11.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed")
}

func TestRemoveDeletesVersionDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)
	st := seedInstalled(t, home, "0.12.0")

	_, _, err := runCLI(t, "remove", "0.12.0")
	require.NoError(t, err)
	_, statErr := os.Stat(st.VersionDir("0.12.0"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSetVersionWritesPin(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)
	seedInstalled(t, home, "0.13.0")

	cwd := t.TempDir()
	chdir(t, cwd)

	stdout, _, err := runCLI(t, "set-version", "0.13.0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pinned 0.13.0")

	data, err := os.ReadFile(filepath.Join(cwd, resolve.PinFileName))
	require.NoError(t, err)
	assert.Equal(t, "0.13.0", string(data))
}

func TestPathPrintsResolvedToolchainDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)
	t.Setenv(resolve.EnvVersion, "0.12.0")
	chdir(t, t.TempDir())

	stdout, _, err := runCLI(t, "path")
	require.NoError(t, err)
	assert.Equal(t, store.At(home).VersionDir("0.12.0")+"\n", stdout)
}

func TestToolPathAlias(t *testing.T) {
	home := t.TempDir()
	t.Setenv(store.EnvHome, home)
	t.Setenv(resolve.EnvVersion, "0.12.0")
	chdir(t, t.TempDir())

	stdout, _, err := runCLI(t, "tool-path")
	require.NoError(t, err)
	assert.Equal(t, store.At(home).VersionDir("0.12.0")+"\n", stdout)
}
