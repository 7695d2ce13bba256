package article

import (
	"errors"
	"net/http"
	"strconv"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/handler/http/respond"
	refUC "knowledge-hub/internal/usecase/reference"
)

// TagDTO is the JSON representation of a tag.
type TagDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagsHandler returns the tags attached to one article via the article_tags
// join relation. Registered with an {id} path wildcard.
type TagsHandler struct{ Svc *refUC.Service }

func (h TagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid article id"))
		return
	}

	tags, err := h.Svc.ArticleTags(r.Context(), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTagDTOs(tags))
}

func toTagDTOs(tags []*entity.Tag) []TagDTO {
	out := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagDTO{ID: t.ID, Name: t.Name})
	}
	return out
}
