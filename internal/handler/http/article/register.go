package article

import (
	"net/http"

	artUC "knowledge-hub/internal/usecase/article"
	refUC "knowledge-hub/internal/usecase/reference"
)

// Register wires the article routes into the mux. Mutating routes are
// wrapped with authz, which is the identity when authentication is disabled.
func Register(mux *http.ServeMux, svc *artUC.Service, refSvc *refUC.Service, authz func(http.Handler) http.Handler) {
	if authz == nil {
		authz = func(h http.Handler) http.Handler { return h }
	}

	mux.Handle("GET /api/articles", ListHandler{svc})
	mux.Handle("GET /api/articles/search", SearchHandler{svc})
	mux.Handle("GET /api/articles/{id}/tags", TagsHandler{refSvc})
	mux.Handle("GET /api/articles/", GetHandler{svc})
	mux.Handle("GET /api/suggestions", SuggestHandler{svc})

	mux.Handle("POST /api/articles", authz(CreateHandler{svc}))
	mux.Handle("PUT /api/articles/", authz(UpdateHandler{svc}))
	mux.Handle("DELETE /api/articles/", authz(DeleteHandler{svc}))
}
