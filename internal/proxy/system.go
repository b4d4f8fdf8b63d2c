package proxy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/coastline-tools/zigup/internal/messages"
)

// System abstracts the OS operations dispatch needs, so tests can run
// without touching process state. Other packages define their own narrower
// interfaces for their own needs.
type System interface {
	Getenv(key string) string
	Environ() []string
	Getwd() (string, error)
	RunBinary(path string, args []string, env []string) (int, error)
}

// RealSystem implements System against the OS, forwarding the standard
// streams to the child process.
type RealSystem struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRealSystem returns a RealSystem wired to this process's streams.
func NewRealSystem() RealSystem {
	return RealSystem{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// Getwd returns the current working directory.
func (RealSystem) Getwd() (string, error) {
	return os.Getwd()
}

// RunBinary spawns path as a child process, waits for it, and returns its
// exit code. A child killed by a signal is an error, never a clean exit.
func (s RealSystem) RunBinary(path string, args []string, env []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	if err == nil {
		return cmd.ProcessState.ExitCode(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ProcessState != nil && exitErr.ProcessState.Exited() {
			return exitErr.ProcessState.ExitCode(), nil
		}
		return 0, fmt.Errorf(messages.ProxyChildSignaledFmt, path, err)
	}
	return 0, fmt.Errorf(messages.ProxySpawnFailedFmt, path, err)
}
