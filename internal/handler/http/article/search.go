package article

import (
	"net/http"

	"knowledge-hub/internal/handler/http/respond"
	"knowledge-hub/internal/repository"
	artUC "knowledge-hub/internal/usecase/article"
)

// SearchHandler filters published articles by keyword, version, category and
// module. All filters are optional; an unfiltered search equals the list
// endpoint.
type SearchHandler struct{ Svc *artUC.Service }

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.ArticleFilters{
		Keyword:  q.Get("keyword"),
		Version:  q.Get("version"),
		Category: q.Get("category"),
		Module:   q.Get("module"),
	}

	list, err := h.Svc.Search(r.Context(), filters)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}
