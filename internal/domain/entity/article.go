// Package entity defines the core domain entities and validation logic for the application.
// It contains the knowledge-base business objects such as Article, Category and FAQ,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// Article status values. Only published articles are visible through
// list, search and suggestion endpoints.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article represents a knowledge-base article.
// Version, category and module references are optional; when set they must
// point at existing rows (enforced by the store's foreign keys).
type Article struct {
	ID         int64
	Title      string
	Summary    string
	SourceURL  string
	Status     string
	VersionID  *int64
	CategoryID *int64
	ModuleID   *int64
	UpdatedAt  time.Time
}

// ValidStatus reports whether s is a recognized article status.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}
