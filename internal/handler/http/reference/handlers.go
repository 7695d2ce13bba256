// Package reference provides HTTP handlers for the read-only lookup
// endpoints: categories, tags, versions and modules.
package reference

import (
	"net/http"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/handler/http/respond"
	refUC "knowledge-hub/internal/usecase/reference"
)

// VersionDTO is the JSON representation of a version.
type VersionDTO struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// CategoryDTO is the JSON representation of a category.
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ModuleDTO is the JSON representation of a module.
type ModuleDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagDTO is the JSON representation of a tag.
type TagDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VersionsHandler lists all versions.
type VersionsHandler struct{ Svc *refUC.Service }

func (h VersionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	versions, err := h.Svc.Versions(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]VersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, VersionDTO{ID: v.ID, Label: v.Label})
	}
	respond.JSON(w, http.StatusOK, out)
}

// CategoriesHandler lists all categories.
type CategoriesHandler struct{ Svc *refUC.Service }

func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.Categories(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	respond.JSON(w, http.StatusOK, out)
}

// ModulesHandler lists all modules.
type ModulesHandler struct{ Svc *refUC.Service }

func (h ModulesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	modules, err := h.Svc.Modules(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]ModuleDTO, 0, len(modules))
	for _, m := range modules {
		out = append(out, ModuleDTO{ID: m.ID, Name: m.Name})
	}
	respond.JSON(w, http.StatusOK, out)
}

// TagsHandler lists all tags.
type TagsHandler struct{ Svc *refUC.Service }

func (h TagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Svc.Tags(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toTagDTOs(tags))
}

func toTagDTOs(tags []*entity.Tag) []TagDTO {
	out := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagDTO{ID: t.ID, Name: t.Name})
	}
	return out
}

// Register wires the reference list routes into the mux.
func Register(mux *http.ServeMux, svc *refUC.Service) {
	mux.Handle("GET /api/versions", VersionsHandler{svc})
	mux.Handle("GET /api/categories", CategoriesHandler{svc})
	mux.Handle("GET /api/modules", ModulesHandler{svc})
	mux.Handle("GET /api/tags", TagsHandler{svc})
}
