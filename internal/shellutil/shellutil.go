// internal/shellutil/shellutil.go

// Package shellutil runs external CLI tools (aws, tar, gunzip) with
// non-zero exit treated as an error carrying the tool's stderr. The Runner
// interface exists so app-level tests can fake the transport.
package shellutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

type Runner interface {
	// Run executes a command whose console output is part of the tool's own
	// user feedback (download progress bars and the like).
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and captures its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the real Runner. Console is where subprocess output goes
// during Run.
type ExecRunner struct {
	Console io.Writer
}

func (e ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = e.Console
	cmd.Stderr = e.Console
	if err := cmd.Run(); err != nil {
		return wrapExecErr(name, args, err, nil)
	}
	return nil
}

func (e ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return nil, wrapExecErr(name, args, err, errb.Bytes())
	}
	return out.Bytes(), nil
}

func wrapExecErr(name string, args []string, err error, stderr []byte) error {
	msg := fmt.Sprintf("%s %s: %v", name, strings.Join(args, " "), err)
	if s := bytes.TrimSpace(stderr); len(s) > 0 {
		msg += ": " + string(s)
	}
	return fmt.Errorf("%s", msg)
}
