package app

import (
	"regexp"
	"strings"
)

// Query text recorded on spans is collapsed to one line and capped so a bulk
// song insert cannot blow up a trace attribute.
const maxTracedQueryLength = 512

var whitespaceRun = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := whitespaceRun.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
