// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"knowledge-hub/internal/repository"
)

// filterAll is the sentinel filter value treated the same as "not provided".
const filterAll = "All"

// articleSelectBase joins articles to their reference tables and restricts
// results to published rows. All search and list queries share this shape.
const articleSelectBase = `
SELECT a.id, a.title, a.summary, a.source_url, a.status,
       a.version_id, a.category_id, a.module_id, a.updated_at,
       v.label AS version_label, c.name AS category_name, m.name AS module_name
FROM articles a
LEFT JOIN versions v   ON a.version_id  = v.id
LEFT JOIN categories c ON a.category_id = c.id
LEFT JOIN modules m    ON a.module_id   = m.id
WHERE a.status = 'published'`

// articleSelectSuffix fixes result ordering and caps the row count.
// Ties on updated_at fall back to the store's natural row order, which is
// not guaranteed stable.
const articleSelectSuffix = `
ORDER BY a.updated_at DESC
LIMIT 100`

// ArticleQueryBuilder assembles the article search statement from a base
// template plus zero or more optional predicates. Each provided filter
// contributes an AND clause and its bound parameters in a fixed order:
// keyword (two parameters), version, category, module. Values are always
// bound, never interpolated into the SQL text.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// provided reports whether a filter value should produce a predicate.
// Empty strings and the "All" sentinel are treated as "not provided".
func provided(v string) bool {
	return v != "" && v != filterAll
}

// likeEscaper neutralizes LIKE metacharacters so user input matches
// literally. Backslash is PostgreSQL's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds the bound substring pattern for a case-insensitive
// LIKE predicate.
func likePattern(v string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(v)) + "%"
}

// Build returns the complete parameterized search statement and its
// ordered argument list. With zero provided filters the statement is
// identical to the unfiltered list query.
func (qb *ArticleQueryBuilder) Build(filters repository.ArticleFilters) (query string, args []any) {
	var sb strings.Builder
	sb.WriteString(articleSelectBase)

	if provided(filters.Keyword) {
		kw := likePattern(filters.Keyword)
		args = append(args, kw, kw)
		sb.WriteString(fmt.Sprintf("\n  AND (LOWER(a.title) LIKE $%d OR LOWER(a.summary) LIKE $%d)",
			len(args)-1, len(args)))
	}
	if provided(filters.Version) {
		args = append(args, filters.Version)
		sb.WriteString(fmt.Sprintf("\n  AND v.label = $%d", len(args)))
	}
	if provided(filters.Category) {
		args = append(args, filters.Category)
		sb.WriteString(fmt.Sprintf("\n  AND c.name = $%d", len(args)))
	}
	if provided(filters.Module) {
		args = append(args, filters.Module)
		sb.WriteString(fmt.Sprintf("\n  AND m.name = $%d", len(args)))
	}

	sb.WriteString(articleSelectSuffix)
	return sb.String(), args
}
