package repository

import (
	"context"

	"knowledge-hub/internal/domain/entity"
)

// ReferenceRepository provides read access to the lookup tables
// (versions, categories, modules, tags). These entities are read-only
// from the API's perspective.
type ReferenceRepository interface {
	ListVersions(ctx context.Context) ([]*entity.Version, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListModules(ctx context.Context) ([]*entity.Module, error)
	ListTags(ctx context.Context) ([]*entity.Tag, error)
	// ListArticleTags returns the tags attached to the given article
	// through the article_tags join relation.
	ListArticleTags(ctx context.Context, articleID int64) ([]*entity.Tag, error)
}
