// Package faq provides the HTTP handler for FAQ listing.
package faq

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/handler/http/respond"
	faqUC "knowledge-hub/internal/usecase/faq"
)

// DTO is the JSON representation of a FAQ entry.
type DTO struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	ArticleID *int64    `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ListHandler lists FAQ entries, optionally filtered by the article_id
// query parameter.
type ListHandler struct{ Svc *faqUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var articleID *int64
	if raw := r.URL.Query().Get("article_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid article_id"))
			return
		}
		articleID = &id
	}

	faqs, err := h.Svc.List(r.Context(), articleID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(faqs))
}

func toDTOs(faqs []*entity.FAQ) []DTO {
	out := make([]DTO, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, DTO{
			ID:        f.ID,
			Question:  f.Question,
			Answer:    f.Answer,
			ArticleID: f.ArticleID,
			CreatedAt: f.CreatedAt,
		})
	}
	return out
}

// Register wires the FAQ route into the mux.
func Register(mux *http.ServeMux, svc *faqUC.Service) {
	mux.Handle("GET /api/faqs", ListHandler{svc})
}
