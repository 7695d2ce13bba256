package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
)

func isNotFound(err error) bool {
	return errors.Is(err, entity.ErrNotFound)
}

// maxSuggestions caps the autocomplete result size.
const maxSuggestions = 8

// CreateInput represents the input parameters for creating a new article.
// Title, Summary and SourceURL are required; Status defaults to published
// and the reference IDs default to absent.
type CreateInput struct {
	Title      string
	Summary    string
	SourceURL  string
	Status     string
	VersionID  *int64
	CategoryID *int64
	ModuleID   *int64
}

// UpdateInput represents the input parameters for a partial article update.
// Unprovided fields are not updated; a reference field provided as null
// clears that reference. The field set is the update allow-list: request
// keys outside it never reach the store.
type UpdateInput struct {
	ID         int64
	Title      *string
	Summary    *string
	SourceURL  *string
	Status     *string
	VersionID  repository.NullableID
	CategoryID repository.NullableID
	ModuleID   repository.NullableID
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves the newest published articles with joined labels.
func (s *Service) List(ctx context.Context) ([]repository.ArticleDetail, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Search retrieves published articles matching the optional filters.
// Filter values are trimmed before being handed to the repository; the
// repository's query builder treats empty and "All" values as absent.
func (s *Service) Search(ctx context.Context, filters repository.ArticleFilters) ([]repository.ArticleDetail, error) {
	filters.Keyword = strings.TrimSpace(filters.Keyword)
	filters.Version = strings.TrimSpace(filters.Version)
	filters.Category = strings.TrimSpace(filters.Category)
	filters.Module = strings.TrimSpace(filters.Module)

	articles, err := s.Repo.Search(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID with joined labels.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	detail, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if detail == nil {
		return nil, ErrArticleNotFound
	}
	return detail, nil
}

// Create validates the input, persists the article and returns the fully
// joined representation re-fetched from the store.
// Returns a ValidationError if a required field is absent or invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*repository.ArticleDetail, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if strings.TrimSpace(in.Summary) == "" {
		return nil, &entity.ValidationError{Field: "summary", Message: "is required"}
	}
	if strings.TrimSpace(in.SourceURL) == "" {
		return nil, &entity.ValidationError{Field: "source_url", Message: "is required"}
	}
	if err := entity.ValidateSourceURL(in.SourceURL); err != nil {
		return nil, fmt.Errorf("validate source URL: %w", err)
	}

	status := in.Status
	if status == "" {
		status = entity.StatusPublished
	}
	if !entity.ValidStatus(status) {
		return nil, &entity.ValidationError{Field: "status", Message: "must be draft or published"}
	}

	art := &entity.Article{
		Title:      in.Title,
		Summary:    in.Summary,
		SourceURL:  in.SourceURL,
		Status:     status,
		VersionID:  in.VersionID,
		CategoryID: in.CategoryID,
		ModuleID:   in.ModuleID,
	}

	id, err := s.Repo.Create(ctx, art)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	detail, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch created article: %w", err)
	}
	if detail == nil {
		return nil, ErrArticleNotFound
	}
	return detail, nil
}

// Update applies a partial update and returns the refreshed joined
// representation.
// Returns ErrNoUpdatableFields if the request carries no allowed field,
// ErrArticleNotFound if the target row does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*repository.ArticleDetail, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	upd := repository.ArticleUpdate{
		Title:      in.Title,
		Summary:    in.Summary,
		SourceURL:  in.SourceURL,
		Status:     in.Status,
		VersionID:  in.VersionID,
		CategoryID: in.CategoryID,
		ModuleID:   in.ModuleID,
	}
	if upd.Empty() {
		return nil, ErrNoUpdatableFields
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if in.SourceURL != nil {
		if err := entity.ValidateSourceURL(*in.SourceURL); err != nil {
			return nil, fmt.Errorf("validate source URL: %w", err)
		}
	}
	if in.Status != nil && !entity.ValidStatus(*in.Status) {
		return nil, &entity.ValidationError{Field: "status", Message: "must be draft or published"}
	}

	if err := s.Repo.Update(ctx, in.ID, upd); err != nil {
		if isNotFound(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	detail, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch updated article: %w", err)
	}
	if detail == nil {
		return nil, ErrArticleNotFound
	}
	return detail, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive, ErrArticleNotFound
// if no row matched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Suggest returns up to 8 distinct published article titles matching q.
// An empty query short-circuits to an empty list without touching the store.
func (s *Service) Suggest(ctx context.Context, q string) ([]string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []string{}, nil
	}

	titles, err := s.Repo.SuggestTitles(ctx, q, maxSuggestions)
	if err != nil {
		return nil, fmt.Errorf("suggest titles: %w", err)
	}
	return titles, nil
}
