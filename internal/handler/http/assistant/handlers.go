// Package assistant provides the HTTP handler for the AI chat proxy.
package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"knowledge-hub/internal/handler/http/respond"
	asstUC "knowledge-hub/internal/usecase/assistant"
)

// QueryRequest is the JSON body of a chat proxy request.
type QueryRequest struct {
	Message string `json:"message"`
}

// QueryResponse carries the upstream reply verbatim.
type QueryResponse struct {
	Reply string `json:"reply"`
}

// QueryHandler forwards one user message to the completion service. Each
// request is stateless; an empty message is a client error and an upstream
// failure is a server error.
type QueryHandler struct{ Svc *asstUC.Service }

func (h QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	reply, err := h.Svc.Query(r.Context(), req.Message)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, asstUC.ErrMissingMessage) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, QueryResponse{Reply: reply})
}

// Register wires the chat proxy route into the mux.
func Register(mux *http.ServeMux, svc *asstUC.Service) {
	mux.Handle("POST /ai/query", QueryHandler{svc})
}
