package article

import (
	"net/http"

	"knowledge-hub/internal/handler/http/respond"
	artUC "knowledge-hub/internal/usecase/article"
)

// SuggestHandler returns up to 8 distinct published titles matching the q
// query parameter. An empty q yields an empty list without a store query.
type SuggestHandler struct{ Svc *artUC.Service }

func (h SuggestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	titles, err := h.Svc.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, titles)
}
