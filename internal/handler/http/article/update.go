package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"knowledge-hub/internal/handler/http/pathutil"
	"knowledge-hub/internal/handler/http/respond"
	"knowledge-hub/internal/repository"
	artUC "knowledge-hub/internal/usecase/article"
)

// UpdateHandler applies a partial update restricted to the allow-listed
// fields and returns the refreshed joined representation. Unknown request
// keys are ignored and never reach the store. Reference fields sent as
// explicit null clear the reference.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title      *string               `json:"title"`
		Summary    *string               `json:"summary"`
		SourceURL  *string               `json:"source_url"`
		Status     *string               `json:"status"`
		VersionID  repository.NullableID `json:"version_id"`
		CategoryID repository.NullableID `json:"category_id"`
		ModuleID   repository.NullableID `json:"module_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	detail, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:         id,
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

	respond.JSON(w, http.StatusOK, toDTO(*detail))
}
