package proxy

import (
	"bytes"
	"runtime"
	"testing"
)

func TestRunBinaryPropagatesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	sys := RealSystem{Stdin: bytes.NewReader(nil), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	code, err := sys.RunBinary("/bin/sh", []string{"-c", "exit 9"}, nil)
	if err != nil {
		t.Fatalf("RunBinary: %v", err)
	}
	if code != 9 {
		t.Fatalf("exit code = %d, want 9", code)
	}
}

func TestRunBinaryCapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	var out bytes.Buffer
	sys := RealSystem{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &bytes.Buffer{}}

	code, err := sys.RunBinary("/bin/sh", []string{"-c", "echo hello"}, nil)
	if err != nil {
		t.Fatalf("RunBinary: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out.String() != "hello\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestRunBinarySpawnFailure(t *testing.T) {
	sys := RealSystem{Stdin: bytes.NewReader(nil), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if _, err := sys.RunBinary("/nonexistent/binary", nil, nil); err == nil {
		t.Fatalf("expected spawn failure for missing binary")
	}
}
