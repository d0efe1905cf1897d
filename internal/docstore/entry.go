// Package docstore owns the parsed document corpus: the metadata
// extractor, the in-memory document store, and the shared tokenizer.
package docstore

// Module is the top-level documentation area a document belongs to,
// inferred from the first path segment under the docs root.
type Module string

const (
	ModuleFoundation     Module = "foundation"
	ModuleComponents     Module = "components"
	ModulePatterns       Module = "patterns"
	ModuleEnterprise     Module = "enterprise"
	ModuleQuickReference Module = "quick-reference"
	ModuleOther          Module = "other"
)

// moduleBySegment maps a docs-root top-level folder name (with its
// numeric prefix already stripped) to its Module.
var moduleBySegment = map[string]Module{
	"foundation":      ModuleFoundation,
	"components":      ModuleComponents,
	"patterns":        ModulePatterns,
	"enterprise":      ModuleEnterprise,
	"quick-reference":  ModuleQuickReference,
}

// ResolveModule maps a raw path segment to its Module, defaulting to
// ModuleOther for anything unrecognized.
func ResolveModule(segment string) Module {
	if m, ok := moduleBySegment[segment]; ok {
		return m
	}
	return ModuleOther
}

// ModuleOrder is the canonical module ordering, matching the docs
// root's numeric folder prefixes (01-foundation, 02-components,
// 03-patterns, 04-enterprise, 99-quick-reference). list_all_docs uses
// this instead of alphabetical order, per spec's "enumerate by module,
// in module order".
var ModuleOrder = []Module{
	ModuleFoundation,
	ModuleComponents,
	ModulePatterns,
	ModuleEnterprise,
	ModuleQuickReference,
	ModuleOther,
}

// Metadata holds the fields derived from a document's Markdown body
// beyond its title/module/category. Absent string values are "" rather
// than a pointer type, matching the convention used throughout this
// corpus for optional scalar fields.
type Metadata struct {
	PackageName     string `json:"package_name,omitempty"`
	ImportStatement string `json:"import_statement,omitempty"`
	Description     string `json:"description,omitempty"`
	HasPropsTable   bool   `json:"has_props_table"`
	HasCodeExamples bool   `json:"has_code_examples"`
}

// DocumentEntry is one parsed Markdown file. Entries are immutable after
// indexing - Store.Add replaces an entry wholesale, it never mutates one
// in place.
type DocumentEntry struct {
	ID           string
	Title        string
	RelativePath string
	Content      string
	Module       Module
	Category     string // "" unless Module == ModuleComponents
	Metadata     Metadata
}

// CodeBlock is a single fenced code block extracted from a document,
// labeled with the last section heading (level >= 2) seen before it.
type CodeBlock struct {
	SectionHeading string
	Language       string
	Code           string
}
