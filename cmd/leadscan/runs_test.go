package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/chanakaprasadcw/Scraping/internal/database"
	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// seedRunsDB creates a database with two saved runs and returns its
// directory and the ID of the second run.
func seedRunsDB(t *testing.T) (string, int64) {
	t.Helper()

	dbDir := t.TempDir()
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	first := model.NewLead("Jane Doe")
	first.Company = "Acme Corp"
	first.AddEmail("jane@acme.example.org")
	if _, err := db.SaveRun(ctx, "ctos in berlin", []*model.Lead{first}); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	second := model.NewLead("John Smith")
	second.Company = "Globex"
	runID, err := db.SaveRun(ctx, "names: John Smith", []*model.Lead{second})
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	return dbDir, runID
}

func TestRunsCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists saved runs newest first", func(t *testing.T) {
		t.Parallel()

		dbDir, _ := seedRunsDB(t)

		cmd := NewRunsCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--db", dbDir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"ID", "ctos in berlin", "names: John Smith"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Index(out, "names: John Smith") > strings.Index(out, "ctos in berlin") {
			t.Errorf("newest run should be listed first:\n%s", out)
		}
	})

	t.Run("re-exports the leads of one run", func(t *testing.T) {
		t.Parallel()

		dbDir, runID := seedRunsDB(t)
		outDir := t.TempDir()

		cmd := NewRunsCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{
			"--db", dbDir,
			"--export", strconv.FormatInt(runID, 10),
			"--format", "json",
			"--output", outDir,
		})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Exported 1 leads") {
			t.Errorf("output = %q, want export confirmation", buf.String())
		}

		files, err := filepath.Glob(filepath.Join(outDir, "*.json"))
		if err != nil {
			t.Fatal(err)
		}
		if len(files) != 1 {
			t.Fatalf("got %d export files, want 1", len(files))
		}
	})

	t.Run("exports saved leads by company", func(t *testing.T) {
		t.Parallel()

		dbDir, _ := seedRunsDB(t)
		outDir := t.TempDir()

		cmd := NewRunsCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{
			"--db", dbDir,
			"--company", "acme corp",
			"--format", "csv",
			"--output", outDir,
		})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Exported 1 leads") {
			t.Errorf("output = %q, want one Acme lead exported", buf.String())
		}
	})

	t.Run("empty database prints a notice", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()
		db, err := database.Open(dbDir, database.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		db.Close()

		cmd := NewRunsCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--db", dbDir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No saved runs.") {
			t.Errorf("output = %q, want notice about no runs", buf.String())
		}
	})

	t.Run("missing database errors", func(t *testing.T) {
		t.Parallel()

		cmd := NewRunsCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--db", t.TempDir()})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "database not found") {
			t.Errorf("err = %v, want missing database error", err)
		}
	})

	t.Run("unknown run id errors", func(t *testing.T) {
		t.Parallel()

		dbDir, _ := seedRunsDB(t)

		cmd := NewRunsCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--db", dbDir, "--export", "99"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "no leads stored") {
			t.Errorf("err = %v, want missing run error", err)
		}
	})
}
