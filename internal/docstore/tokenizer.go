package docstore

import "strings"

// stopWords is the fixed English stop-list shared by the index builder
// and the query path, so ranking stays consistent between the two.
var stopWords = buildStopWordSet([]string{
	"the", "and", "for", "with", "this", "that", "use", "can", "will",
	"are", "was", "were", "be", "been", "being", "have", "has", "had", "does",
	"did", "doing", "but", "not", "from", "into", "onto", "out", "over",
	"under", "again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "nor", "only", "own", "same", "than",
	"too", "very", "just", "now", "also", "about", "after", "before",
	"between", "during", "above", "below", "you", "your", "yours", "our",
	"they", "them", "their", "his", "her", "its", "who", "whom", "which",
	"what", "these", "those",
})

func buildStopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Tokenize lowercases text, collapses non-alphanumeric runs into single
// spaces, splits on whitespace, and drops tokens shorter than two
// characters or present in the stop-list. It is used identically at
// index time and query time so ranking is consistent.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	lastWasSpace := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSpace = false
		} else if !lastWasSpace {
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	fields := strings.Fields(b.String())
	var tokens []string
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// IsStopWord reports whether a lowercase token is in the shared stop-list.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
