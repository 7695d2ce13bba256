// Package article provides HTTP handlers for article endpoints: listing,
// searching, detail, create, update, delete, per-article tags and title
// suggestions.
package article

import (
	"errors"
	"net/http"
	"time"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
	artUC "knowledge-hub/internal/usecase/article"
)

// DTO is the JSON representation of an article joined with the
// human-readable labels of its references. Label fields are null when the
// corresponding foreign key is absent.
type DTO struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	SourceURL  string    `json:"source_url"`
	Status     string    `json:"status"`
	VersionID  *int64    `json:"version_id"`
	CategoryID *int64    `json:"category_id"`
	ModuleID   *int64    `json:"module_id"`
	Version    *string   `json:"version"`
	Category   *string   `json:"category"`
	Module     *string   `json:"module"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// toDTO converts a joined repository row to its JSON representation.
func toDTO(d repository.ArticleDetail) DTO {
	return DTO{
		ID:         d.Article.ID,
		Title:      d.Article.Title,
		Summary:    d.Article.Summary,
		SourceURL:  d.Article.SourceURL,
		Status:     d.Article.Status,
		VersionID:  d.Article.VersionID,
		CategoryID: d.Article.CategoryID,
		ModuleID:   d.Article.ModuleID,
		Version:    d.VersionLabel,
		Category:   d.CategoryName,
		Module:     d.ModuleName,
		UpdatedAt:  d.Article.UpdatedAt,
	}
}

// toDTOs converts joined rows, always returning a non-nil slice so empty
// results serialize as [] rather than null.
func toDTOs(list []repository.ArticleDetail) []DTO {
	out := make([]DTO, 0, len(list))
	for _, d := range list {
		out = append(out, toDTO(d))
	}
	return out
}

// statusFromError maps use case errors to HTTP status codes: validation
// problems and invalid references are client errors, missing rows are 404,
// anything else is a storage failure.
func statusFromError(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, entity.ErrInvalidReference),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, artUC.ErrInvalidArticleID),
		errors.Is(err, artUC.ErrNoUpdatableFields):
		return http.StatusBadRequest
	case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
