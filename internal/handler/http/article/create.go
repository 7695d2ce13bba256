package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"knowledge-hub/internal/handler/http/respond"
	artUC "knowledge-hub/internal/usecase/article"
)

// CreateHandler creates an article from the request body and returns the
// fully joined representation with a Location header.
type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string `json:"title"`
		Summary    string `json:"summary"`
		SourceURL  string `json:"source_url"`
		Status     string `json:"status"`
		VersionID  *int64 `json:"version_id"`
		CategoryID *int64 `json:"category_id"`
		ModuleID   *int64 `json:"module_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	detail, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:      req.Title,
		Summary:    req.Summary,
		SourceURL:  req.SourceURL,
		Status:     req.Status,
		VersionID:  req.VersionID,
		CategoryID: req.CategoryID,
		ModuleID:   req.ModuleID,
	})
	if err != nil {
		respond.SafeError(w, statusFromError(err), err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/articles/%d", detail.Article.ID))
	respond.JSON(w, http.StatusCreated, toDTO(*detail))
}
