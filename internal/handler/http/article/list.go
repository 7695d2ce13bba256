package article

import (
	"net/http"

	"knowledge-hub/internal/handler/http/respond"
	artUC "knowledge-hub/internal/usecase/article"
)

// ListHandler returns the newest published articles, capped at 100 rows.
type ListHandler struct{ Svc *artUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}
