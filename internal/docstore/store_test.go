package docstore

import "testing"

func buildTestStore() *Store {
	s := NewStore()
	s.Add(DocumentEntry{ID: "components/buttons/Button", Title: "Button", Module: ModuleComponents, Category: "buttons"})
	s.Add(DocumentEntry{ID: "components/forms/Checkbox", Title: "Checkbox", Module: ModuleComponents, Category: "forms"})
	s.Add(DocumentEntry{ID: "components/data-display/DataGrid", Title: "DataGrid", Module: ModuleComponents, Category: "data-display"})
	s.Add(DocumentEntry{ID: "foundation/theming", Title: "Theming", Module: ModuleFoundation})
	return s
}

func TestStore_GetByID(t *testing.T) {
	s := buildTestStore()
	entry, ok := s.GetByID("components/buttons/Button")
	if !ok {
		t.Fatal("expected entry to be found")
	}
	if entry.Title != "Button" {
		t.Errorf("Title = %q, want Button", entry.Title)
	}

	if _, ok := s.GetByID("does-not-exist"); ok {
		t.Error("expected GetByID to miss for unknown id")
	}
}

func TestStore_AddOverwritesDuplicateID(t *testing.T) {
	s := NewStore()
	s.Add(DocumentEntry{ID: "x", Title: "Old Title", Module: ModuleFoundation})
	s.Add(DocumentEntry{ID: "x", Title: "New Title", Module: ModuleFoundation})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	entry, _ := s.GetByID("x")
	if entry.Title != "New Title" {
		t.Errorf("Title = %q, want New Title", entry.Title)
	}
}

func TestStore_Clear(t *testing.T) {
	s := buildTestStore()
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after Clear", s.Len())
	}
	if len(s.GetModules()) != 0 {
		t.Error("expected no modules after Clear")
	}
}

func TestStore_FindByName(t *testing.T) {
	s := buildTestStore()

	tests := []struct {
		name    string
		query   string
		wantID  string
		wantHit bool
	}{
		{"exact case-insensitive", "button", "components/buttons/Button", true},
		{"normalized equality", "Data Grid", "components/data-display/DataGrid", true},
		{"normalized prefix", "check", "components/forms/Checkbox", true},
		{"normalized prefix, mixed case", "Them", "foundation/theming", true},
		{"no match", "zzz-nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := s.FindByName(tt.query)
			if ok != tt.wantHit {
				t.Fatalf("FindByName(%q) hit = %v, want %v", tt.query, ok, tt.wantHit)
			}
			if ok && entry.ID != tt.wantID {
				t.Errorf("FindByName(%q).ID = %q, want %q", tt.query, entry.ID, tt.wantID)
			}
		})
	}
}

func TestStore_FindByName_Deterministic(t *testing.T) {
	s := buildTestStore()
	a, okA := s.FindByName("BUTTON")
	b, okB := s.FindByName("button")
	if !okA || !okB || a.ID != b.ID {
		t.Errorf("expected both queries to resolve to the same entry, got %v/%v and %v/%v", a.ID, okA, b.ID, okB)
	}
}

func TestStore_FindByName_Tier2BreaksTiesByModulePriority(t *testing.T) {
	s := NewStore()
	s.Add(DocumentEntry{ID: "foundation/theming", Title: "Theming", Module: ModuleFoundation})
	s.Add(DocumentEntry{ID: "components/misc/TheMing", Title: "The Ming", Module: ModuleComponents})

	entry, ok := s.FindByName("the-ming")
	if !ok {
		t.Fatal("expected a tier 2 match")
	}
	if entry.ID != "components/misc/TheMing" {
		t.Errorf("FindByName(%q).ID = %q, want components/misc/TheMing (components outranks foundation on tier 2 ties)", "the-ming", entry.ID)
	}
}

func TestStore_GetModulesAndCategories(t *testing.T) {
	s := buildTestStore()

	modules := s.GetModules()
	if len(modules) != 2 {
		t.Fatalf("len(modules) = %d, want 2", len(modules))
	}

	categories := s.GetCategories()
	if len(categories) != 3 {
		t.Fatalf("len(categories) = %d, want 3", len(categories))
	}
}
