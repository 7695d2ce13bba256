// Package reference provides read-only use cases for the lookup entities
// (versions, categories, modules, tags).
package reference

import (
	"context"
	"fmt"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
)

// Service exposes the reference lists consumed by the API.
type Service struct {
	Repo repository.ReferenceRepository
}

func (s *Service) Versions(ctx context.Context) ([]*entity.Version, error) {
	versions, err := s.Repo.ListVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return versions, nil
}

func (s *Service) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Service) Modules(ctx context.Context) ([]*entity.Module, error) {
	modules, err := s.Repo.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

func (s *Service) Tags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := s.Repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// ArticleTags returns the tags attached to one article.
func (s *Service) ArticleTags(ctx context.Context, articleID int64) ([]*entity.Tag, error) {
	tags, err := s.Repo.ListArticleTags(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list article tags: %w", err)
	}
	return tags, nil
}
