// Package index builds the document store and search engine from a
// docs directory tree, and provides the IndexSet aggregate that lets
// reindex swap both atomically.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fluentdocs/mcp-server/internal/docstore"
	"github.com/fluentdocs/mcp-server/internal/search"
)

// Stats summarizes one buildIndex run.
type Stats struct {
	IndexedFiles int
	FailedFiles  int
	DurationMs   int64
	ByModule     map[string]int
	ByCategory   map[string]int
}

// FailedFile records a per-file failure encountered during the walk;
// these never abort indexing, only get counted and logged.
type FailedFile struct {
	Path string
	Err  error
}

// defaultExtensions is used when BuildIndex is called with no
// extensions configured, matching common.NewDefaultConfig's Docs.Extensions.
var defaultExtensions = []string{".md"}

// matchesExtension reports whether path's extension case-insensitively
// equals one of extensions.
func matchesExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// BuildIndex clears store and engine, walks docsRoot depth-first for
// every file whose extension is in extensions (defaulting to [".md"]
// when extensions is empty, per config.Docs.Extensions), extracts and
// indexes each one, and returns run statistics. A failure to open
// docsRoot itself aborts with an error; per-file failures are counted
// in Stats.FailedFiles and otherwise ignored.
func BuildIndex(docsRoot string, extensions []string, store *docstore.Store, engine *search.Engine) (Stats, []FailedFile, error) {
	start := time.Now()

	if len(extensions) == 0 {
		extensions = defaultExtensions
	}

	if _, err := os.Stat(docsRoot); err != nil {
		return Stats{}, nil, fmt.Errorf("cannot open docs root %q: %w", docsRoot, err)
	}

	store.Clear()
	engine.Clear()

	stats := Stats{
		ByModule:   make(map[string]int),
		ByCategory: make(map[string]int),
	}
	var failed []FailedFile

	walkErr := filepath.Walk(docsRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			failed = append(failed, FailedFile{Path: path, Err: err})
			stats.FailedFiles++
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !matchesExtension(path, extensions) {
			return nil
		}

		rel, relErr := filepath.Rel(docsRoot, path)
		if relErr != nil {
			rel = path
		}

		entry, indexErr := indexOneFile(path, rel, store, engine)
		if indexErr != nil {
			failed = append(failed, FailedFile{Path: rel, Err: indexErr})
			stats.FailedFiles++
			return nil
		}

		stats.IndexedFiles++
		stats.ByModule[string(entry.Module)]++
		if entry.Category != "" {
			stats.ByCategory[entry.Category]++
		}
		return nil
	})
	if walkErr != nil {
		return stats, failed, fmt.Errorf("walking docs root %q: %w", docsRoot, walkErr)
	}

	stats.DurationMs = time.Since(start).Milliseconds()
	return stats, failed, nil
}

// indexOneFile reads, extracts, and indexes a single Markdown file. A
// panic inside the extractor (malformed input the parser can't
// anticipate) is recovered here so one bad file never aborts the walk.
func indexOneFile(path, rel string, store *docstore.Store, engine *search.Engine) (entry docstore.DocumentEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic extracting %s: %v", rel, r)
		}
	}()

	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		return docstore.DocumentEntry{}, readErr
	}

	content := raw
	if !utf8.Valid(content) {
		content = []byte(strings.ToValidUTF8(string(content), "�"))
	}

	entry = docstore.ParseDocument(filepath.ToSlash(rel), string(content))
	store.Add(entry)
	engine.Index(entry)
	return entry, nil
}

// SortedCounts renders a map[string]int as a stable, descending-by-count
// (then alphabetical) slice of "name: count" strings, used by tools that
// report per-module/per-category breakdowns.
func SortedCounts(counts map[string]int) []string {
	type kv struct {
		name  string
		count int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].name < items[j].name
	})
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprintf("%s: %d", it.name, it.count))
	}
	return out
}
