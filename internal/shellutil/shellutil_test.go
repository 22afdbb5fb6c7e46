// internal/shellutil/shellutil_test.go
package shellutil

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestOutputCapturesStdout(t *testing.T) {
	r := ExecRunner{}
	out, err := r.Output(context.Background(), "sh", "-c", "echo hi")
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if string(out) != "hi\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestOutputFailureIncludesStderr(t *testing.T) {
	r := ExecRunner{}
	_, err := r.Output(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("stderr not in error: %v", err)
	}
	if !strings.Contains(err.Error(), "exit status 3") {
		t.Fatalf("exit status not in error: %v", err)
	}
}

func TestRunStreamsToConsole(t *testing.T) {
	var console bytes.Buffer
	r := ExecRunner{Console: &console}
	if err := r.Run(context.Background(), "sh", "-c", "echo progress"); err != nil {
		t.Fatalf("run err: %v", err)
	}
	if !strings.Contains(console.String(), "progress") {
		t.Fatalf("console = %q", console.String())
	}
}

func TestRunNonZeroExit(t *testing.T) {
	r := ExecRunner{}
	if err := r.Run(context.Background(), "sh", "-c", "exit 1"); err == nil {
		t.Fatal("expected error")
	}
}
