// Package search implements the weighted TF-IDF inverted index over the
// document corpus: indexing, ranked querying, and excerpt extraction.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

const (
	weightTitle    = 5
	weightHeadings = 3
	weightBody     = 1

	excerptWindow = 200
)

// posting records a term's weighted frequency within one document.
type posting struct {
	weightedFreq float64
}

// Engine is the inverted index described by spec's search component: a
// term -> {docId -> weighted frequency} postings map, per-document
// length for normalization, and global document frequency per term.
type Engine struct {
	postings map[string]map[string]*posting
	docFreq  map[string]int
	docLen   map[string]float64
	docCount int
}

// NewEngine returns an empty Engine.
func NewEngine() *Engine {
	return &Engine{
		postings: make(map[string]map[string]*posting),
		docFreq:  make(map[string]int),
		docLen:   make(map[string]float64),
	}
}

// Clear empties the index.
func (e *Engine) Clear() {
	e.postings = make(map[string]map[string]*posting)
	e.docFreq = make(map[string]int)
	e.docLen = make(map[string]float64)
	e.docCount = 0
}

// isHeadingLine matches a Markdown ATX heading line, used to split
// the body stream into the "headings" field for weighting purposes.
func isHeadingLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "#")
}

// Index tokenizes entry's title, heading lines, and remaining body text
// as three weighted field streams and merges their term counts into the
// postings map.
func (e *Engine) Index(entry docstore.DocumentEntry) {
	termWeight := make(map[string]float64)

	for _, t := range docstore.Tokenize(entry.Title) {
		termWeight[t] += weightTitle
	}

	var headingText, bodyText strings.Builder
	for _, line := range strings.Split(entry.Content, "\n") {
		if isHeadingLine(line) {
			headingText.WriteString(line)
			headingText.WriteByte('\n')
		} else {
			bodyText.WriteString(line)
			bodyText.WriteByte('\n')
		}
	}
	for _, t := range docstore.Tokenize(headingText.String()) {
		termWeight[t] += weightHeadings
	}
	for _, t := range docstore.Tokenize(bodyText.String()) {
		termWeight[t] += weightBody
	}

	var length float64
	for term, weight := range termWeight {
		length += weight

		bucket, ok := e.postings[term]
		if !ok {
			bucket = make(map[string]*posting)
			e.postings[term] = bucket
		}
		if _, exists := bucket[entry.ID]; !exists {
			e.docFreq[term]++
		}
		bucket[entry.ID] = &posting{weightedFreq: weight}
	}

	e.docLen[entry.ID] = length
	e.docCount++
}

// Result is one ranked search hit.
type Result struct {
	Document  docstore.DocumentEntry
	Score     float64
	Relevance int
	Excerpt   string
}

// Query runs the weighted TF-IDF ranking over candidates (already
// filtered by module if requested by the caller), returning up to limit
// results sorted by score descending, ties broken by title length then
// lexicographic title. Empty or all-stopword queries yield no results.
func (e *Engine) Query(query string, candidates []docstore.DocumentEntry, limit int) []Result {
	terms := docstore.Tokenize(query)
	if len(terms) == 0 {
		return nil
	}

	candidateSet := make(map[string]docstore.DocumentEntry, len(candidates))
	for _, c := range candidates {
		candidateSet[c.ID] = c
	}

	scores := make(map[string]float64)
	for _, term := range terms {
		bucket, ok := e.postings[term]
		if !ok {
			continue
		}
		df := e.docFreq[term]
		idf := math.Log(float64(e.docCount+1) / float64(df+1))
		for docID, p := range bucket {
			entry, ok := candidateSet[docID]
			if !ok {
				continue
			}
			length := e.docLen[docID]
			if length <= 0 {
				length = 1
			}
			scores[entry.ID] += p.weightedFreq * idf / math.Sqrt(length)
		}
	}

	if len(scores) == 0 {
		return nil
	}

	results := make([]Result, 0, len(scores))
	for id, score := range scores {
		results = append(results, Result{Document: candidateSet[id], Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		ti, tj := results[i].Document.Title, results[j].Document.Title
		if len(ti) != len(tj) {
			return len(ti) < len(tj)
		}
		return ti < tj
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	topScore := results[0].Score
	highestDFTerm := highestDocFreqTerm(e, terms)
	for i := range results {
		if topScore > 0 {
			results[i].Relevance = int(math.Round(100 * results[i].Score / topScore))
		}
		results[i].Excerpt = excerpt(results[i].Document.Content, highestDFTerm)
	}

	return results
}

// highestDocFreqTerm returns the query term with the largest document
// frequency, used to anchor the excerpt window per spec ("highest-df
// query term").
func highestDocFreqTerm(e *Engine, terms []string) string {
	var best string
	bestDF := -1
	for _, t := range terms {
		if df := e.docFreq[t]; df > bestDF {
			bestDF = df
			best = t
		}
	}
	return best
}

// excerpt locates the earliest 200-character window in content
// containing term (case-insensitive), pads to the nearest sentence or
// word boundary, and prepends/appends "…" when truncated. Falls back to
// the start of the content when term is empty or not found.
func excerpt(content, term string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	lower := strings.ToLower(content)
	idx := -1
	if term != "" {
		idx = strings.Index(lower, strings.ToLower(term))
	}
	if idx < 0 {
		idx = 0
	}

	start := idx - excerptWindow/2
	if start < 0 {
		start = 0
	}
	end := start + excerptWindow
	if end > len(content) {
		end = len(content)
		start = end - excerptWindow
		if start < 0 {
			start = 0
		}
	}

	start = padToBoundary(content, start, -1)
	end = padToBoundary(content, end, 1)

	snippet := strings.TrimSpace(content[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(content) {
		snippet = snippet + "…"
	}
	return snippet
}

// padToBoundary nudges offset outward (dir -1 left, +1 right) to the
// nearest sentence (. ! ?) or word (space) boundary, without crossing
// more than a short lookahead so excerpts stay close to the window.
func padToBoundary(content string, offset, dir int) int {
	const maxLookahead = 40
	for steps := 0; steps < maxLookahead; steps++ {
		pos := offset + dir*steps
		if pos <= 0 {
			return 0
		}
		if pos >= len(content) {
			return len(content)
		}
		c := content[pos]
		if c == '.' || c == '!' || c == '?' {
			if dir > 0 {
				return pos + 1
			}
			return pos
		}
		if c == ' ' || c == '\n' {
			return pos
		}
	}
	return offset
}
