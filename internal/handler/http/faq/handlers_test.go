package faq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/handler/http/faq"
	faqUC "knowledge-hub/internal/usecase/faq"
)

type stubRepo struct {
	faqs       []*entity.FAQ
	gotArticle *int64
	called     bool
	err        error
}

func (s *stubRepo) ListFAQs(_ context.Context, articleID *int64) ([]*entity.FAQ, error) {
	s.called = true
	s.gotArticle = articleID
	return s.faqs, s.err
}

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	faq.Register(mux, &faqUC.Service{Repo: repo})
	return mux
}

func TestListHandler_All(t *testing.T) {
	repo := &stubRepo{faqs: []*entity.FAQ{
		{ID: 1, Question: "How do I reset?", Answer: "Use the settings page.", CreatedAt: time.Now()},
	}}
	mux := newMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.gotArticle != nil {
		t.Errorf("articleID = %v, want nil", *repo.gotArticle)
	}

	var out []faq.DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(out) != 1 || out[0].Question != "How do I reset?" {
		t.Errorf("unexpected faqs: %+v", out)
	}
}

func TestListHandler_FilterByArticle(t *testing.T) {
	repo := &stubRepo{}
	mux := newMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/faqs?article_id=42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.gotArticle == nil || *repo.gotArticle != 42 {
		t.Errorf("articleID = %v, want 42", repo.gotArticle)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestListHandler_InvalidArticleID(t *testing.T) {
	tests := []string{"abc", "0", "-3"}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			repo := &stubRepo{}
			mux := newMux(repo)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/faqs?article_id="+raw, nil))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if repo.called {
				t.Error("store queried for invalid article_id")
			}
		})
	}
}

func TestListHandler_StoreError(t *testing.T) {
	mux := newMux(&stubRepo{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
