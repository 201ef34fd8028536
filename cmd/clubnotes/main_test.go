package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"clubnotes/internal/notes"
	"clubnotes/internal/search"
	"clubnotes/internal/storage"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since the commands and their bound variables are package-level.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

const sampleNotes = "Run\n🔊 https://example.com/run.mp3\nto move fast\nI run every morning\n====\nWalk\nto move slowly"

func TestParseCommand(t *testing.T) {
	out, err := run(t, sampleNotes, "parse")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}

	var got []notes.Note
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("parse output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].Pronunciation != "https://example.com/run.mp3" || got[1].Definition != "to move slowly" {
		t.Errorf("parse output = %+v", got)
	}
}

func TestFormatCommand(t *testing.T) {
	input, _ := json.Marshal(notes.Parse(sampleNotes))

	out, err := run(t, string(input), "format")
	if err != nil {
		t.Fatalf("format error = %v", err)
	}
	if got := notes.Parse(out); len(got) != 2 || got[0].Title != "Run" || got[1].Title != "Walk" {
		t.Errorf("format output does not parse back: %q", out)
	}

	if _, err := run(t, "not json", "format"); err == nil {
		t.Error("format with invalid JSON should fail")
	}
}

func TestImportAndSearchCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	out, err := run(t, sampleNotes, "import", "--db", db, "--date", "2024-03-05")
	if err != nil {
		t.Fatalf("import error = %v", err)
	}
	if !strings.Contains(out, "Imported 2 notes") {
		t.Errorf("import output = %q", out)
	}

	out, err = run(t, "", "search", "--db", db, "--json", "move")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	var results []search.RenderedResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("search output is not JSON: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("search returned %d results, want 2", len(results))
	}
	if results[0].NoteTitle != "Run" || results[0].Badge != "Definition" {
		t.Errorf("search first result = %+v", results[0])
	}

	// Flags from the previous run must not leak into this one.
	out, err = run(t, "", "search", "--db", db, "move")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "[") || !strings.Contains(out, "[Definition] Run") {
		t.Errorf("plain search output = %q, want text listing", out)
	}

	out, err = run(t, "", "search", "--db", db, "x")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	if !strings.Contains(out, "No results.") {
		t.Errorf("short query output = %q, want no results", out)
	}
}

func TestImportCommand_InvalidDate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	if _, err := run(t, sampleNotes, "import", "--db", db, "--date", "5 March"); err == nil {
		t.Error("import with invalid date should fail")
	}
}

func TestImportCommand_DateDoesNotLeak(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	if _, err := run(t, sampleNotes, "import", "--db", db, "--date", "2024-03-05"); err != nil {
		t.Fatalf("import error = %v", err)
	}
	if _, err := run(t, sampleNotes, "import", "--db", db); err == nil {
		t.Error("import without --date should fail even after an earlier run set it")
	}
}

func TestRestoreAndPurgeCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	out, err := run(t, sampleNotes, "import", "--db", db, "--date", "2024-03-05")
	if err != nil {
		t.Fatalf("import error = %v", err)
	}
	id := strings.Fields(strings.SplitN(out, "session ", 2)[1])[0]

	if _, err := run(t, "", "restore", "--db", db, id); err == nil {
		t.Error("restore of a live session should fail")
	}

	sqlDB, err := storage.New(db)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if err := storage.NewSessionRepo(sqlDB).Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	_ = sqlDB.Close()

	out, err = run(t, "", "restore", "--db", db, id)
	if err != nil {
		t.Fatalf("restore error = %v", err)
	}
	if !strings.Contains(out, "Restored session "+id) {
		t.Errorf("restore output = %q", out)
	}

	out, err = run(t, "", "purge", "--db", db, "--older-than", "0s")
	if err != nil {
		t.Fatalf("purge error = %v", err)
	}
	if !strings.Contains(out, "Purged 0 sessions") {
		t.Errorf("purge output = %q, restored session must survive", out)
	}
}

func TestImportDirCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "2024-03-05.txt"), []byte(sampleNotes), 0644); err != nil {
		t.Fatalf("failed to write notes file: %v", err)
	}

	out, err := run(t, "", "import-dir", "--db", db, dir)
	if err != nil {
		t.Fatalf("import-dir error = %v", err)
	}
	if !strings.Contains(out, `"created": 1`) {
		t.Errorf("import-dir output = %s", out)
	}

	// A second run finds nothing new.
	out, err = run(t, "", "import-dir", "--db", db, dir)
	if err != nil {
		t.Fatalf("import-dir error = %v", err)
	}
	if !strings.Contains(out, `"unchanged": 1`) {
		t.Errorf("second import-dir output = %s", out)
	}
}
