package article

import (
	"net/http"

	"knowledge-hub/internal/handler/http/pathutil"
	"knowledge-hub/internal/handler/http/respond"
	artUC "knowledge-hub/internal/usecase/article"
)

// GetHandler returns a single article by ID with joined labels.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	detail, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFromError(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(*detail))
}
