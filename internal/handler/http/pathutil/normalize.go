package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a compiled route pattern with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first. Patterns are
// pre-compiled at initialization.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/api/articles/\d+/tags$`), template: "/api/articles/:id/tags"},
	{pattern: regexp.MustCompile(`^/api/articles/\d+$`), template: "/api/articles/:id"},
	{pattern: regexp.MustCompile(`^/api/faqs/\d+$`), template: "/api/faqs/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion: /api/articles/123 becomes /api/articles/:id while
// static paths such as /health, /metrics and /api/articles/search pass
// through unchanged. Query strings and trailing slashes are stripped first.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	return path
}
