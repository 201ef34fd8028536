package importer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "2024-03-05.txt", "Run\nto move fast")
	writeFile(t, root, "2024/2024-03-12.md", "Walk\nto move slowly")
	writeFile(t, root, "README.md", "not a session")
	writeFile(t, root, "2024-13-40.txt", "bad date")
	writeFile(t, root, "2024-03-19.json", "wrong extension")
	writeFile(t, root, ".trash/2024-03-26.txt", "hidden")

	scanned, err := Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	var relPaths []string
	for _, f := range scanned {
		relPaths = append(relPaths, f.RelPath)
		if !filepath.IsAbs(f.AbsPath) {
			t.Errorf("Scan() AbsPath %q is not absolute", f.AbsPath)
		}
	}
	sort.Strings(relPaths)

	want := []string{"2024-03-05.txt", "2024/2024-03-12.md"}
	if len(relPaths) != len(want) {
		t.Fatalf("Scan() found %v, want %v", relPaths, want)
	}
	for i := range want {
		if relPaths[i] != want[i] {
			t.Errorf("Scan()[%d] = %q, want %q", i, relPaths[i], want[i])
		}
	}

	for _, f := range scanned {
		if f.RelPath == "2024/2024-03-12.md" && f.Date != "2024-03-12" {
			t.Errorf("Scan() date = %q, want 2024-03-12", f.Date)
		}
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Scan() on a missing root should fail")
	}
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "2024-03-05.txt", "Run")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, root); err == nil {
		t.Error("Scan() with a cancelled context should fail")
	}
}
