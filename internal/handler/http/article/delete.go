package article

import (
	"net/http"

	"knowledge-hub/internal/handler/http/pathutil"
	"knowledge-hub/internal/handler/http/respond"
	artUC "knowledge-hub/internal/usecase/article"
)

// DeleteHandler removes an article. Returns 204 on success and 404 when the
// row does not exist, so a second delete of the same ID fails.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFromError(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
