package repository

import (
	"context"

	"knowledge-hub/internal/domain/entity"
)

// FAQRepository provides read access to FAQ entries.
type FAQRepository interface {
	// ListFAQs returns FAQ entries, optionally restricted to one article.
	// A nil articleID returns all entries.
	ListFAQs(ctx context.Context, articleID *int64) ([]*entity.FAQ, error)
}
