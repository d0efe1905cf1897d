package index

import (
	"sync"

	"github.com/fluentdocs/mcp-server/internal/docstore"
	"github.com/fluentdocs/mcp-server/internal/search"
)

// IndexSet is the aggregate that owns the document store and the search
// engine as a single swappable unit. Reindex builds a fresh store and
// engine off to the side and swaps both handles under one lock, so
// concurrent readers (Store/Engine) either see the complete pre-reindex
// pair or the complete post-reindex pair, never store populated with
// engine empty or vice versa.
type IndexSet struct {
	mu         sync.RWMutex
	store      *docstore.Store
	engine     *search.Engine
	docsRoot   string
	extensions []string
}

// NewIndexSet builds the initial index from docsRoot, scanning only
// files whose extension is in extensions (per config.Docs.Extensions;
// defaults to [".md"] when empty). A failure to open docsRoot is
// returned directly; the set is left with empty store/engine in that
// case so callers can decide whether to abort startup.
func NewIndexSet(docsRoot string, extensions []string) (*IndexSet, Stats, []FailedFile, error) {
	store := docstore.NewStore()
	engine := search.NewEngine()
	stats, failed, err := BuildIndex(docsRoot, extensions, store, engine)
	return &IndexSet{store: store, engine: engine, docsRoot: docsRoot, extensions: extensions}, stats, failed, err
}

// Store returns the current document store. The returned pointer is
// stable for the duration of the caller's read; once a Reindex
// completes, subsequent calls to Store/Engine observe the new pair.
func (s *IndexSet) Store() *docstore.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// Engine returns the current search engine. A Reindex can complete
// between a Store call and an Engine call, so callers that need both
// handles from the same generation use Snapshot.
func (s *IndexSet) Engine() *search.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Snapshot returns the current store and engine together, guaranteeing
// both come from the same generation even if a Reindex races this call.
func (s *IndexSet) Snapshot() (*docstore.Store, *search.Engine) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store, s.engine
}

// Reindex rebuilds the corpus into a fresh store and engine, then swaps
// them in under the write lock. On failure to open docsRoot, the
// previous store/engine are left untouched and the error is returned.
// previousCount is the document count before the swap, for reporting
// "N new document(s) discovered" deltas.
func (s *IndexSet) Reindex() (stats Stats, previousCount int, failed []FailedFile, err error) {
	newStore := docstore.NewStore()
	newEngine := search.NewEngine()

	s.mu.RLock()
	docsRoot := s.docsRoot
	extensions := s.extensions
	previousCount = s.store.Len()
	s.mu.RUnlock()

	stats, failed, err = BuildIndex(docsRoot, extensions, newStore, newEngine)
	if err != nil {
		return stats, previousCount, failed, err
	}

	s.mu.Lock()
	s.store = newStore
	s.engine = newEngine
	s.mu.Unlock()

	return stats, previousCount, failed, nil
}

// DocsRoot returns the configured docs directory.
func (s *IndexSet) DocsRoot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docsRoot
}

// NewIndexSetForTest wraps an already-populated store/engine pair
// without touching the filesystem, for use by tool-layer tests that
// need a ServerContext over fixture data.
func NewIndexSetForTest(store *docstore.Store, engine *search.Engine) *IndexSet {
	return &IndexSet{store: store, engine: engine}
}
