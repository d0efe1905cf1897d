package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
	"github.com/fluentdocs/mcp-server/internal/search"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
}

func TestBuildIndex(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "02-components/buttons/Button.md", "# Button\n\nA clickable button.\n")
	writeFixture(t, root, "02-components/forms/Checkbox.md", "# Checkbox\n\nA toggle control.\n")
	writeFixture(t, root, "01-foundation/theming.md", "# Theming\n\nColor tokens.\n")
	writeFixture(t, root, "README.txt", "not markdown, should be skipped")

	store := docstore.NewStore()
	engine := search.NewEngine()

	stats, failed, err := BuildIndex(root, nil, store, engine)
	if err != nil {
		t.Fatalf("BuildIndex returned error: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("failed = %v, want none", failed)
	}
	if stats.IndexedFiles != 3 {
		t.Errorf("IndexedFiles = %d, want 3", stats.IndexedFiles)
	}
	if stats.ByModule["components"] != 2 {
		t.Errorf("ByModule[components] = %d, want 2", stats.ByModule["components"])
	}
	if stats.ByModule["foundation"] != 1 {
		t.Errorf("ByModule[foundation] = %d, want 1", stats.ByModule["foundation"])
	}
	if store.Len() != 3 {
		t.Errorf("store.Len() = %d, want 3", store.Len())
	}

	results := engine.Query("button", store.GetByModule(docstore.ModuleComponents), 10)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
}

func TestBuildIndex_MissingRoot(t *testing.T) {
	store := docstore.NewStore()
	engine := search.NewEngine()

	_, _, err := BuildIndex(filepath.Join(t.TempDir(), "does-not-exist"), nil, store, engine)
	if err == nil {
		t.Fatal("expected error for missing docs root")
	}
}

func TestBuildIndex_ClearsPreviousState(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "02-components/buttons/Button.md", "# Button\n\nA clickable button.\n")

	store := docstore.NewStore()
	engine := search.NewEngine()
	store.Add(docstore.DocumentEntry{ID: "stale", Title: "Stale", Module: docstore.ModuleOther})

	stats, _, err := BuildIndex(root, nil, store, engine)
	if err != nil {
		t.Fatalf("BuildIndex returned error: %v", err)
	}
	if stats.IndexedFiles != 1 {
		t.Errorf("IndexedFiles = %d, want 1", stats.IndexedFiles)
	}
	if _, ok := store.GetByID("stale"); ok {
		t.Error("expected stale entry to be cleared before rebuild")
	}
}

func TestSortedCounts(t *testing.T) {
	counts := map[string]int{"components": 5, "foundation": 5, "patterns": 2}
	got := SortedCounts(counts)
	want := []string{"components: 5", "foundation: 5", "patterns: 2"}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIndexSet_Reindex(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "02-components/buttons/Button.md", "# Button\n\nA clickable button.\n")

	set, stats, failed, err := NewIndexSet(root, nil)
	if err != nil {
		t.Fatalf("NewIndexSet returned error: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("failed = %v, want none", failed)
	}
	if stats.IndexedFiles != 1 {
		t.Fatalf("IndexedFiles = %d, want 1", stats.IndexedFiles)
	}
	if set.Store().Len() != 1 {
		t.Fatalf("Store().Len() = %d, want 1", set.Store().Len())
	}

	writeFixture(t, root, "02-components/forms/Checkbox.md", "# Checkbox\n\nA toggle control.\n")

	newStats, previousCount, failed, err := set.Reindex()
	if err != nil {
		t.Fatalf("Reindex returned error: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("failed = %v, want none", failed)
	}
	if previousCount != 1 {
		t.Errorf("previousCount = %d, want 1", previousCount)
	}
	if newStats.IndexedFiles != 2 {
		t.Errorf("IndexedFiles = %d, want 2", newStats.IndexedFiles)
	}

	store, engine := set.Snapshot()
	if store.Len() != 2 {
		t.Errorf("store.Len() = %d, want 2", store.Len())
	}
	if results := engine.Query("checkbox", store.GetByModule(docstore.ModuleComponents), 10); len(results) != 1 {
		t.Errorf("len(results) = %d, want 1 after reindex", len(results))
	}
}
