package docstore

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	numericPrefixRE = regexp.MustCompile(`^\d+-`)
	versionDirRE    = regexp.MustCompile(`^v\d+$`)
	packageLineRE   = regexp.MustCompile("\\*\\*Package:\\*\\*\\s*`([^`]+)`")
	importLineRE    = regexp.MustCompile("\\*\\*Import:\\*\\*\\s*`([^`]+)`")
	fencedImportRE  = regexp.MustCompile(`import\s*\{[^}]*\}\s*from\s*['"](@[^'"]+)['"]`)
	fluentImportRE  = regexp.MustCompile(`from\s*['"]@fluentui/react-components['"]`)
	h1RE            = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)
)

// hasCodeExamplesLanguages is the narrower set spec.md §3/§4.1 requires
// for the hasCodeExamples flag: ts/tsx/typescript/jsx only, no js.
var hasCodeExamplesLanguages = map[string]struct{}{
	"ts": {}, "tsx": {}, "typescript": {}, "jsx": {},
}

// labeledCodeBlockLanguages is the wider set spec.md §4.1 allows for
// extractLabeledCodeBlocks, which additionally captures plain
// js/javascript example fences.
var labeledCodeBlockLanguages = map[string]struct{}{
	"ts": {}, "tsx": {}, "typescript": {}, "jsx": {}, "js": {}, "javascript": {},
}

// markdownParser parses GFM-flavoured Markdown (tables and
// strikethrough; bare-URL autolinking is not enabled) the way the rest of this corpus does (see the PDF renderer's
// AST walk, the only other goldmark consumer in the teacher codebase).
var markdownParser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
).Parser()

func parseAST(source []byte) ast.Node {
	return markdownParser.Parse(text.NewReader(source))
}

// ParseDocument is the pure function at the heart of the Metadata
// Extractor: (relativePath, rawContent) -> DocumentEntry. It never
// panics or returns an error - missing fields simply become "" / false,
// per spec's "defensive and line-oriented" failure mode.
func ParseDocument(relativePath, rawContent string) DocumentEntry {
	source := []byte(rawContent)
	doc := parseAST(source)

	module, category := resolveModuleAndCategory(relativePath)
	title := extractTitle(doc, source, relativePath)
	description := extractDescription(doc, source)
	pkg, imp := extractPackageAndImport(rawContent)
	hasProps := hasPropsTable(doc, source)
	hasCode := hasCodeExamples(doc, source)

	return DocumentEntry{
		ID:           deriveID(relativePath),
		Title:        title,
		RelativePath: relativePath,
		Content:      rawContent,
		Module:       module,
		Category:     category,
		Metadata: Metadata{
			PackageName:     pkg,
			ImportStatement: imp,
			Description:     description,
			HasPropsTable:   hasProps,
			HasCodeExamples: hasCode,
		},
	}
}

// deriveID strips numeric prefixes from every path segment and the
// trailing ".md" extension, then rejoins with "/".
func deriveID(relativePath string) string {
	slashed := filepath.ToSlash(relativePath)
	segments := strings.Split(slashed, "/")
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		if i == len(segments)-1 {
			seg = strings.TrimSuffix(seg, filepath.Ext(seg))
		}
		seg = numericPrefixRE.ReplaceAllString(seg, "")
		if seg == "" {
			continue
		}
		out = append(out, seg)
	}
	return strings.Join(out, "/")
}

func stripNumericPrefix(seg string) string {
	return numericPrefixRE.ReplaceAllString(seg, "")
}

// kebabify lowercases a string and collapses anything that isn't
// [a-z0-9] into a single hyphen, trimming leading/trailing hyphens.
// Used to keep module/category names lowercase kebab-case per invariant.
func kebabify(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	lastDash := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func isIndexFile(filename string) bool {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = stripNumericPrefix(base)
	base = strings.ToLower(base)
	return base == "index" || strings.HasSuffix(base, "-index")
}

// resolveModuleAndCategory inspects the relative path to determine the
// Module (first segment, skipping a leading version directory such as
// "v9") and, for components, the Category (the folder one level below
// the module - promoted to the grandparent folder when the file itself
// is a component's index file).
func resolveModuleAndCategory(relativePath string) (Module, string) {
	slashed := filepath.ToSlash(relativePath)
	segments := strings.Split(slashed, "/")
	if len(segments) == 0 {
		return ModuleOther, ""
	}

	idx := 0
	if versionDirRE.MatchString(segments[0]) && len(segments) > 1 {
		idx = 1
	}

	moduleSegment := stripNumericPrefix(segments[idx])
	module := ResolveModule(strings.ToLower(moduleSegment))

	if module != ModuleComponents {
		return module, ""
	}

	dirSegments := segments[idx+1 : len(segments)-1] // folders between module and filename
	if len(dirSegments) == 0 {
		return module, ""
	}

	filename := segments[len(segments)-1]
	immediateParent := dirSegments[len(dirSegments)-1]

	if isIndexFile(filename) && len(dirSegments) >= 2 {
		return module, kebabify(stripNumericPrefix(dirSegments[len(dirSegments)-2]))
	}

	return module, kebabify(stripNumericPrefix(immediateParent))
}

// extractTitle returns the first level-1 heading, falling back to the
// basename with its numeric prefix stripped and hyphens replaced by
// spaces.
func extractTitle(doc ast.Node, source []byte, relativePath string) string {
	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || title != "" {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(plainText(h, source))
		}
		return ast.WalkContinue, nil
	})
	if title != "" {
		return title
	}

	// Fallback: regex scan handles malformed headings goldmark can't parse.
	if m := h1RE.FindSubmatch(source); m != nil {
		return strings.TrimSpace(string(m[1]))
	}

	base := filepath.Base(relativePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = stripNumericPrefix(base)
	return strings.ReplaceAll(base, "-", " ")
}

// extractDescription returns the first non-blank, non-heading,
// non-blockquote top-level paragraph, with inline emphasis stripped
// (plainText only ever collects raw Text/CodeSpan content).
func extractDescription(doc ast.Node, source []byte) string {
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		if p, ok := child.(*ast.Paragraph); ok {
			if text := strings.TrimSpace(plainText(p, source)); text != "" {
				return text
			}
		}
	}
	return ""
}

// plainText concatenates the raw text of Text and CodeSpan descendants,
// which effectively discards emphasis/strong markup while preserving
// the words themselves.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Text(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// extractPackageAndImport scans raw lines for the **Package:**/**Import:**
// label patterns, falling back to inferring @fluentui/react-components
// when a fenced block imports from it, and to the first `import { ... }
// from '@...'` line inside any fenced block.
func extractPackageAndImport(content string) (pkg string, imp string) {
	if m := packageLineRE.FindStringSubmatch(content); m != nil {
		pkg = m[1]
	}
	if m := importLineRE.FindStringSubmatch(content); m != nil {
		imp = m[1]
	}

	var fenced strings.Builder
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			fenced.WriteString(line)
			fenced.WriteByte('\n')
		}
	}
	code := fenced.String()

	if imp == "" {
		if m := fencedImportRE.FindString(code); m != "" {
			imp = strings.TrimSpace(m)
		}
	}

	if pkg == "" && fluentImportRE.MatchString(code) {
		pkg = "@fluentui/react-components"
	}

	return pkg, imp
}

// headingInfo records a heading's level, plain text, and the byte offset
// of the start of its source line (used to slice verbatim Markdown for
// extractPropsSection without re-rendering the AST).
type headingInfo struct {
	level  int
	text   string
	offset int
}

func collectHeadings(doc ast.Node, source []byte) []headingInfo {
	var headings []headingInfo
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, headingInfo{
			level:  h.Level,
			text:   strings.TrimSpace(plainText(h, source)),
			offset: lineStart(source, headingOffset(h, source)),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// headingOffset returns the byte offset of the first inline text inside
// a heading, used as an anchor to find the start of its source line.
func headingOffset(h *ast.Heading, source []byte) int {
	var offset int
	ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || offset != 0 {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			offset = t.Segment.Start
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return offset
}

func lineStart(source []byte, offset int) int {
	if offset <= 0 || offset > len(source) {
		return 0
	}
	i := offset
	for i > 0 && source[i-1] != '\n' {
		i--
	}
	return i
}

var propsHeadingRE = regexp.MustCompile(`(?i)props`)

func isPropsHeading(text string) bool {
	return propsHeadingRE.MatchString(text)
}

// ExtractPropsSection returns the Markdown slice from the first heading
// whose text mentions "Props" through (excluding) the next heading of
// equal or higher level. Returns "" if no such heading exists.
func ExtractPropsSection(content string) string {
	source := []byte(content)
	doc := parseAST(source)
	headings := collectHeadings(doc, source)

	for i, h := range headings {
		if !isPropsHeading(h.text) {
			continue
		}
		end := len(source)
		for j := i + 1; j < len(headings); j++ {
			if headings[j].level <= h.level {
				end = headings[j].offset
				break
			}
		}
		return strings.TrimRight(string(source[h.offset:end]), "\n") + "\n"
	}
	return ""
}

// tableHeaderMentionsProps reports whether a GFM table's header row
// mentions Prop, Slot, or both Name and Description - the spec's
// fallback heuristic for recognizing a props table without a labeled
// heading.
func tableHeaderMentionsProps(table *extast.Table, source []byte) bool {
	header, ok := table.FirstChild().(*extast.TableHeader)
	if !ok {
		return false
	}

	var cells []string
	for cell := header.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, strings.ToLower(plainText(cell, source)))
	}
	joined := strings.Join(cells, " ")

	if strings.Contains(joined, "prop") || strings.Contains(joined, "slot") {
		return true
	}
	return strings.Contains(joined, "name") && strings.Contains(joined, "description")
}

// hasPropsTable implements spec.md's detection rule: a heading whose
// text contains "Props" is followed, before the next heading of any
// level, by a table whose header row mentions Prop/Slot/(Name+Description).
// A document with no headings at all counts when any of its tables has
// such a header row.
func hasPropsTable(doc ast.Node, source []byte) bool {
	headings := collectHeadings(doc, source)
	if len(headings) == 0 {
		return anyTableMentionsProps(doc, source)
	}

	found := false
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if found || !entering {
			return ast.WalkContinue, nil
		}
		table, ok := n.(*extast.Table)
		if !ok {
			return ast.WalkContinue, nil
		}
		if !tableHeaderMentionsProps(table, source) {
			return ast.WalkContinue, nil
		}
		offset := lineStart(source, firstTextOffset(table, source))
		if precededByPropsHeading(headings, offset) {
			found = true
		}
		return ast.WalkContinue, nil
	})
	return found
}

func anyTableMentionsProps(doc ast.Node, source []byte) bool {
	found := false
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if found || !entering {
			return ast.WalkContinue, nil
		}
		if table, ok := n.(*extast.Table); ok && tableHeaderMentionsProps(table, source) {
			found = true
		}
		return ast.WalkContinue, nil
	})
	return found
}

func precededByPropsHeading(headings []headingInfo, tableOffset int) bool {
	var last *headingInfo
	for i := range headings {
		if headings[i].offset > tableOffset {
			break
		}
		last = &headings[i]
	}
	return last != nil && isPropsHeading(last.text)
}

func firstTextOffset(n ast.Node, source []byte) int {
	offset := -1
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || offset >= 0 {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			offset = t.Segment.Start
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if offset < 0 {
		return 0
	}
	return offset
}

// FallbackPropsTables scans the whole document for pipe tables whose
// header mentions Prop/Type/Slot/(Name+Description), used by
// get_props_reference when no explicit Props-labeled section exists.
func FallbackPropsTables(content string) []string {
	source := []byte(content)
	doc := parseAST(source)

	var tables []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		table, ok := n.(*extast.Table)
		if !ok {
			return ast.WalkContinue, nil
		}
		if !tableHeaderOrTypeMentionsProps(table, source) {
			return ast.WalkContinue, nil
		}
		start := lineStart(source, firstTextOffset(table, source))
		end := tableEnd(table, source)
		tables = append(tables, strings.TrimRight(string(source[start:end]), "\n"))
		return ast.WalkContinue, nil
	})
	return tables
}

// tableHeaderOrTypeMentionsProps additionally accepts a "Type" column,
// per get_props_reference's wider fallback-table heuristic (spec.md
// §4.6.6: "Prop"/"Type"/"Slot"/(Name+Description)).
func tableHeaderOrTypeMentionsProps(table *extast.Table, source []byte) bool {
	header, ok := table.FirstChild().(*extast.TableHeader)
	if !ok {
		return false
	}
	var cells []string
	for cell := header.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, strings.ToLower(plainText(cell, source)))
	}
	joined := strings.Join(cells, " ")
	if strings.Contains(joined, "prop") || strings.Contains(joined, "type") || strings.Contains(joined, "slot") {
		return true
	}
	return strings.Contains(joined, "name") && strings.Contains(joined, "description")
}

func tableEnd(table *extast.Table, source []byte) int {
	end := -1
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		ast.Walk(row, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			if t, ok := c.(*ast.Text); ok {
				stop := t.Segment.Stop
				if stop > end {
					end = stop
				}
			}
			return ast.WalkContinue, nil
		})
	}
	if end < 0 {
		return len(source)
	}
	// advance to end of line
	for end < len(source) && source[end] != '\n' {
		end++
	}
	if end < len(source) {
		end++
	}
	return end
}

// hasCodeExamples reports whether the content contains at least one
// fenced code block tagged ts/tsx/typescript/jsx (case-insensitive).
func hasCodeExamples(doc ast.Node, source []byte) bool {
	found := false
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if found || !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := strings.ToLower(string(fcb.Language(source)))
		if _, ok := hasCodeExamplesLanguages[lang]; ok {
			found = true
		}
		return ast.WalkContinue, nil
	})
	return found
}

// ExtractLabeledCodeBlocks walks the document tracking the last seen
// heading of level >= 2 as the section label for any fenced JS/TS/JSX
// code block encountered. Blocks before any such heading are labeled
// "General".
func ExtractLabeledCodeBlocks(content string) []CodeBlock {
	source := []byte(content)
	doc := parseAST(source)

	var blocks []CodeBlock
	currentHeading := "General"

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			if h.Level >= 2 {
				currentHeading = strings.TrimSpace(plainText(h, source))
			}
			return ast.WalkSkipChildren, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Language(source))
		if _, ok := labeledCodeBlockLanguages[strings.ToLower(lang)]; !ok {
			return ast.WalkSkipChildren, nil
		}

		var code strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			code.Write(seg.Value(source))
		}

		blocks = append(blocks, CodeBlock{
			SectionHeading: currentHeading,
			Language:       lang,
			Code:           strings.TrimRight(code.String(), "\n"),
		})
		return ast.WalkSkipChildren, nil
	})

	return blocks
}
