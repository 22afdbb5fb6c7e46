// internal/fetchapp/app_test.go
package fetchapp

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunNoSubcommand(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run(nil, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errBuf.String(), "subcommand") {
		t.Fatalf("stderr: %q", errBuf.String())
	}
}

func TestRunHelp(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--help"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("stdout: %q", out.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--version"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out.String(), "msadb version") {
		t.Fatalf("stdout: %q", out.String())
	}
}

func TestRunUnknownSubcommand(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"sync"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
