package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAppendResultAppendsOneDocumentPerRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")

	rec1 := newRunRecord("flower4", dirForward, "bfs", report{Reachable: true, RegionsExplored: 5, Elapsed: 10 * time.Microsecond})
	rec2 := newRunRecord("exsith", dirForward, "bfs", report{Reachable: false, RegionsExplored: 2, Elapsed: 3 * time.Microsecond})

	if err := appendResult(path, rec1); err != nil {
		t.Fatalf("appendResult: %v", err)
	}
	if err := appendResult(path, rec2); err != nil {
		t.Fatalf("appendResult: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)
	if strings.Count(text, "---\n") != 2 {
		t.Fatalf("expected 2 document separators, got text:\n%s", text)
	}
	if !strings.Contains(text, "flower4") || !strings.Contains(text, "exsith") {
		t.Fatalf("expected both benchmark names in the results file, got:\n%s", text)
	}
	if rec1.RunID == rec2.RunID {
		t.Fatalf("expected distinct run ids, got %q twice", rec1.RunID)
	}
}
