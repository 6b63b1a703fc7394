package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("registers subcommands", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()

		want := map[string]bool{"search": false, "runs": false, "init": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("subcommand %q not registered", name)
			}
		}
	})

	t.Run("has verbose persistent flag", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if cmd.PersistentFlags().Lookup("verbose") == nil {
			t.Error("verbose flag not registered")
		}
	})
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "leadscan version") {
		t.Errorf("version output = %q", out)
	}
	if !strings.Contains(out, "commit:") || !strings.Contains(out, "built:") {
		t.Errorf("version output missing build metadata:\n%s", out)
	}
}

func TestGetVersion(t *testing.T) {
	t.Parallel()

	// Without ldflags the version comes from build info or the fallback;
	// it must never be empty.
	if getVersion() == "" {
		t.Error("getVersion() returned empty string")
	}
}

func TestBuildMetadata(t *testing.T) {
	t.Parallel()

	commitHash, buildDate := buildMetadata()
	if commitHash == "" || buildDate == "" {
		t.Errorf("buildMetadata() = %q, %q, want the unknown fallback at minimum", commitHash, buildDate)
	}
}
