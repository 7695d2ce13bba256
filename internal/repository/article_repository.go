// Package repository defines persistence interfaces for the domain entities.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"encoding/json"

	"knowledge-hub/internal/domain/entity"
)

// ArticleDetail is an article joined with the human-readable labels of its
// referenced version, category and module. Labels are nil when the
// corresponding foreign key is absent.
type ArticleDetail struct {
	Article      *entity.Article
	VersionLabel *string
	CategoryName *string
	ModuleName   *string
}

// ArticleFilters contains the optional filters for article search.
// Empty strings mean "not provided"; the sentinel value "All" is treated
// identically by the query builder.
type ArticleFilters struct {
	Keyword  string // Case-insensitive substring of title or summary
	Version  string // Exact match on the joined version label
	Category string // Exact match on the joined category name
	Module   string // Exact match on the joined module name
}

// NullableID is a reference field in a partial update. It distinguishes a
// key absent from the request (Set false, field untouched) from an explicit
// JSON null (Set true, Value nil), which clears the reference in the store.
type NullableID struct {
	Set   bool
	Value *int64
}

// UnmarshalJSON marks the field as provided. A JSON null leaves Value nil.
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// ArticleUpdate carries a partial field set for an article update.
// Unprovided fields are left untouched; a provided-but-null reference field
// clears the column. The store refreshes updated_at on every update.
type ArticleUpdate struct {
	Title      *string
	Summary    *string
	SourceURL  *string
	Status     *string
	VersionID  NullableID
	CategoryID NullableID
	ModuleID   NullableID
}

// Empty reports whether the update carries no fields at all.
func (u ArticleUpdate) Empty() bool {
	return u.Title == nil && u.Summary == nil && u.SourceURL == nil &&
		u.Status == nil && !u.VersionID.Set && !u.CategoryID.Set && !u.ModuleID.Set
}

type ArticleRepository interface {
	// List retrieves the newest published articles with joined labels,
	// ordered by updated_at descending, capped at 100 rows.
	List(ctx context.Context) ([]ArticleDetail, error)
	// Search retrieves published articles matching the provided filters.
	// Result shape and ordering match List.
	Search(ctx context.Context, filters ArticleFilters) ([]ArticleDetail, error)
	// Get retrieves a single article by ID with joined labels, regardless
	// of status. Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*ArticleDetail, error)
	// Create persists a new article and returns its generated ID.
	// A foreign-key violation surfaces as entity.ErrInvalidReference.
	Create(ctx context.Context, article *entity.Article) (int64, error)
	// Update applies the provided fields of upd to the article.
	// Returns entity.ErrNotFound when no row matched,
	// entity.ErrInvalidReference on a foreign-key violation.
	Update(ctx context.Context, id int64, upd ArticleUpdate) error
	// Delete removes the article. Returns entity.ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
	// SuggestTitles returns up to limit distinct published article titles
	// matching q as a case-insensitive substring of title or summary.
	SuggestTitles(ctx context.Context, q string, limit int) ([]string, error)
}
