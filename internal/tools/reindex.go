package tools

import (
	"fmt"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/index"
)

// Reindex rebuilds the store and search engine from the configured docs
// root and reports the delta against the previous document count.
func (c *ServerContext) Reindex() string {
	stats, previousCount, failed, err := c.Index.Reindex()
	if err != nil {
		var b strings.Builder
		b.WriteString(errorf("reindex failed: %v", err))
		b.WriteString("\n\nTroubleshooting:\n")
		b.WriteString(fmt.Sprintf("- Confirm the docs directory %q exists and is readable.\n", c.Index.DocsRoot()))
		b.WriteString("- Check file permissions on the docs root.\n")
		b.WriteString("- The previously indexed corpus remains in place; no documents were lost.\n")
		return b.String()
	}

	delta := stats.IndexedFiles - previousCount

	var b strings.Builder
	b.WriteString("# Reindex complete\n\n")
	switch {
	case delta > 0:
		fmt.Fprintf(&b, "%d new document(s) discovered.\n", delta)
	case delta < 0:
		fmt.Fprintf(&b, "%d document(s) removed.\n", -delta)
	default:
		b.WriteString("No change in document count.\n")
	}
	fmt.Fprintf(&b, "\n**Total indexed:** %d (was %d)\n", stats.IndexedFiles, previousCount)
	fmt.Fprintf(&b, "**Failed files:** %d\n", stats.FailedFiles)
	fmt.Fprintf(&b, "**Duration:** %dms\n\n", stats.DurationMs)

	if len(stats.ByModule) > 0 {
		b.WriteString("## By module\n\n")
		for _, line := range index.SortedCounts(stats.ByModule) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}
	if len(stats.ByCategory) > 0 {
		b.WriteString("## By category\n\n")
		for _, line := range index.SortedCounts(stats.ByCategory) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}
	if len(failed) > 0 {
		b.WriteString("## Failed files\n\n")
		for _, f := range failed {
			fmt.Fprintf(&b, "- %s: %v\n", f.Path, f.Err)
		}
	}

	return b.String()
}
