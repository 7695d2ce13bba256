// Package faq provides read-only use cases for FAQ entries.
package faq

import (
	"context"
	"fmt"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
)

// Service lists FAQ entries, optionally filtered by article.
type Service struct {
	Repo repository.FAQRepository
}

// List returns FAQ entries; a nil articleID returns all of them.
func (s *Service) List(ctx context.Context, articleID *int64) ([]*entity.FAQ, error) {
	faqs, err := s.Repo.ListFAQs(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return faqs, nil
}
