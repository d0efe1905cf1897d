package docstore

import (
	"sort"
	"strings"
	"sync"
)

// CategoryCount pairs a category or module name with the number of
// entries filed under it, as returned by GetModules/GetCategories.
type CategoryCount struct {
	Name  string
	Count int
}

// Store is the in-memory document corpus: an id index plus per-module
// and per-category listings; FindByName normalizes titles on the fly
// for fuzzy lookup rather than maintaining a separate index.
// Entries are immutable once added; Add replaces wholesale rather than
// mutating in place. Reads take a shared read lock and writes an
// exclusive lock on the store's own RWMutex, so readers never block one
// another; keeping a reindex consistent across the store and the search
// engine is left to the caller (see internal/index.IndexSet).
type Store struct {
	mu sync.RWMutex

	byID       map[string]DocumentEntry
	byModule   map[Module][]DocumentEntry
	byCategory map[string][]DocumentEntry
	order      []string // insertion order of ids, for stable iteration
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		byID:       make(map[string]DocumentEntry),
		byModule:   make(map[Module][]DocumentEntry),
		byCategory: make(map[string][]DocumentEntry),
	}
}

// normalizeTitle lowercases a title and strips everything but letters
// and digits, for fuzzy-lookup equality/prefix/substring comparisons.
func normalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Add inserts entry into every index. A duplicate id overwrites the
// previous entry's position in byModule/byCategory as well, so
// reindexing an updated file never leaves stale copies behind.
func (s *Store) Add(entry DocumentEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[entry.ID]; !exists {
		s.order = append(s.order, entry.ID)
	}
	s.byID[entry.ID] = entry
	s.rebuildDerivedLocked()
}

// Clear empties every index.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]DocumentEntry)
	s.byModule = make(map[Module][]DocumentEntry)
	s.byCategory = make(map[string][]DocumentEntry)
	s.order = nil
}

// rebuildDerivedLocked recomputes byModule/byCategory from byID in
// insertion order. Called under s.mu. O(n) per Add keeps the
// implementation simple; corpora here are small (hundreds of files).
func (s *Store) rebuildDerivedLocked() {
	s.byModule = make(map[Module][]DocumentEntry)
	s.byCategory = make(map[string][]DocumentEntry)

	for _, id := range s.order {
		entry, ok := s.byID[id]
		if !ok {
			continue
		}
		s.byModule[entry.Module] = append(s.byModule[entry.Module], entry)
		if entry.Module == ModuleComponents && entry.Category != "" {
			s.byCategory[entry.Category] = append(s.byCategory[entry.Category], entry)
		}
	}
}

// GetByID returns the entry with the given id, and whether it was found.
func (s *Store) GetByID(id string) (DocumentEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.byID[id]
	return entry, ok
}

// GetByModule returns a stable insertion-ordered copy of every entry in
// the given module.
func (s *Store) GetByModule(module Module) []DocumentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]DocumentEntry(nil), s.byModule[module]...)
}

// GetByCategory returns a stable insertion-ordered copy of every
// component entry filed under the given category.
func (s *Store) GetByCategory(category string) []DocumentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]DocumentEntry(nil), s.byCategory[category]...)
}

// All returns a stable insertion-ordered copy of every entry in the
// store.
func (s *Store) All() []DocumentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DocumentEntry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// moduleRank orders modules for findByName tie-breaking: components
// first, everything else equal after that.
func moduleRank(m Module) int {
	if m == ModuleComponents {
		return 0
	}
	return 1
}

// FindByName runs the deterministic fuzzy-resolution cascade: exact
// case-insensitive title, normalized equality, normalized prefix,
// normalized substring, then any title word prefix-matching the
// normalized query. Ties within a tier are broken by module priority
// (components first), then shorter title, then lexicographic title.
func (s *Store) FindByName(query string) (DocumentEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	normalizedQuery := normalizeTitle(query)
	if normalizedQuery == "" {
		return DocumentEntry{}, false
	}
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	entries := make([]DocumentEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.byID[id])
	}

	pick := func(candidates []DocumentEntry) (DocumentEntry, bool) {
		if len(candidates) == 0 {
			return DocumentEntry{}, false
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if ra, rb := moduleRank(a.Module), moduleRank(b.Module); ra != rb {
				return ra < rb
			}
			if len(a.Title) != len(b.Title) {
				return len(a.Title) < len(b.Title)
			}
			return a.Title < b.Title
		})
		return candidates[0], true
	}

	// Tier 1: exact case-insensitive title match.
	var tier1 []DocumentEntry
	for _, e := range entries {
		if strings.ToLower(e.Title) == lowerQuery {
			tier1 = append(tier1, e)
		}
	}
	if e, ok := pick(tier1); ok {
		return e, true
	}

	// Tier 2: normalized title equality.
	var tier2 []DocumentEntry
	for _, e := range entries {
		if normalizeTitle(e.Title) == normalizedQuery {
			tier2 = append(tier2, e)
		}
	}
	if e, ok := pick(tier2); ok {
		return e, true
	}

	// Tier 3: normalized query is a prefix of a normalized title.
	var tier3 []DocumentEntry
	for _, e := range entries {
		if strings.HasPrefix(normalizeTitle(e.Title), normalizedQuery) {
			tier3 = append(tier3, e)
		}
	}
	if e, ok := pick(tier3); ok {
		return e, true
	}

	// Tier 4: normalized query is a substring of a normalized title.
	var tier4 []DocumentEntry
	for _, e := range entries {
		if strings.Contains(normalizeTitle(e.Title), normalizedQuery) {
			tier4 = append(tier4, e)
		}
	}
	if e, ok := pick(tier4); ok {
		return e, true
	}

	// Tier 5: any title word starts with the normalized query.
	var tier5 []DocumentEntry
	for _, e := range entries {
		for _, word := range strings.Fields(e.Title) {
			if strings.HasPrefix(normalizeTitle(word), normalizedQuery) {
				tier5 = append(tier5, e)
				break
			}
		}
	}
	if e, ok := pick(tier5); ok {
		return e, true
	}

	return DocumentEntry{}, false
}

// GetModules returns every module present, sorted lexicographically,
// with entry counts.
func (s *Store) GetModules() []CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CategoryCount, 0, len(s.byModule))
	for m, entries := range s.byModule {
		out = append(out, CategoryCount{Name: string(m), Count: len(entries)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetCategories returns every component category present, sorted
// lexicographically, with entry counts.
func (s *Store) GetCategories() []CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CategoryCount, 0, len(s.byCategory))
	for c, entries := range s.byCategory {
		out = append(out, CategoryCount{Name: c, Count: len(entries)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the total number of entries in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
