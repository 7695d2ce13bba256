package article_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/handler/http/article"
	"knowledge-hub/internal/repository"
	artUC "knowledge-hub/internal/usecase/article"
	refUC "knowledge-hub/internal/usecase/reference"
)

type stubArticleRepo struct {
	listResult    []repository.ArticleDetail
	searchResult  []repository.ArticleDetail
	searchFilters repository.ArticleFilters
	getResult     map[int64]*repository.ArticleDetail
	createID      int64
	createErr     error
	updateErr     error
	lastUpdate    repository.ArticleUpdate
	deleteErr     error
	suggestResult []string
	suggestCalls  int
	err           error
}

func (s *stubArticleRepo) List(context.Context) ([]repository.ArticleDetail, error) {
	return s.listResult, s.err
}

func (s *stubArticleRepo) Search(_ context.Context, f repository.ArticleFilters) ([]repository.ArticleDetail, error) {
	s.searchFilters = f
	return s.searchResult, s.err
}

func (s *stubArticleRepo) Get(_ context.Context, id int64) (*repository.ArticleDetail, error) {
	return s.getResult[id], s.err
}

func (s *stubArticleRepo) Create(context.Context, *entity.Article) (int64, error) {
	return s.createID, s.createErr
}

func (s *stubArticleRepo) Update(_ context.Context, _ int64, upd repository.ArticleUpdate) error {
	s.lastUpdate = upd
	return s.updateErr
}

func (s *stubArticleRepo) Delete(context.Context, int64) error {
	return s.deleteErr
}

func (s *stubArticleRepo) SuggestTitles(context.Context, string, int) ([]string, error) {
	s.suggestCalls++
	return s.suggestResult, s.err
}

type stubReferenceRepo struct {
	tags []*entity.Tag
	err  error
}

func (s *stubReferenceRepo) ListVersions(context.Context) ([]*entity.Version, error) {
	return nil, s.err
}
func (s *stubReferenceRepo) ListCategories(context.Context) ([]*entity.Category, error) {
	return nil, s.err
}
func (s *stubReferenceRepo) ListModules(context.Context) ([]*entity.Module, error) {
	return nil, s.err
}
func (s *stubReferenceRepo) ListTags(context.Context) ([]*entity.Tag, error) {
	return s.tags, s.err
}
func (s *stubReferenceRepo) ListArticleTags(context.Context, int64) ([]*entity.Tag, error) {
	return s.tags, s.err
}

func ptr[T any](v T) *T { return &v }

func sampleDetail(id int64) repository.ArticleDetail {
	return repository.ArticleDetail{
		Article: &entity.Article{
			ID:        id,
			Title:     "Install guide",
			Summary:   "How to install",
			SourceURL: "https://docs.example.com/install",
			Status:    entity.StatusPublished,
			VersionID: ptr(int64(2)),
			UpdatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		VersionLabel: ptr("2.0"),
	}
}

func newMux(repo *stubArticleRepo, refRepo *stubReferenceRepo) *http.ServeMux {
	mux := http.NewServeMux()
	article.Register(mux, &artUC.Service{Repo: repo}, &refUC.Service{Repo: refRepo}, nil)
	return mux
}

func TestListHandler(t *testing.T) {
	repo := &stubArticleRepo{listResult: []repository.ArticleDetail{sampleDetail(1)}}
	mux := newMux(repo, &stubReferenceRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []article.DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].ID != 1 || out[0].Title != "Install guide" {
		t.Errorf("unexpected DTO: %+v", out[0])
	}
	if out[0].Version == nil || *out[0].Version != "2.0" {
		t.Errorf("version label = %v, want 2.0", out[0].Version)
	}
}

func TestListHandler_EmptyIsArray(t *testing.T) {
	mux := newMux(&stubArticleRepo{}, &stubReferenceRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestSearchHandler_PassesFilters(t *testing.T) {
	repo := &stubArticleRepo{}
	mux := newMux(repo, &stubReferenceRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/articles/search?keyword=install&version=2.0&category=Setup&module=Core", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	want := repository.ArticleFilters{Keyword: "install", Version: "2.0", Category: "Setup", Module: "Core"}
	if diff := cmp.Diff(want, repo.searchFilters); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchHandler_StoreError(t *testing.T) {
	repo := &stubArticleRepo{err: errors.New("query failed")}
	mux := newMux(repo, &stubReferenceRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/search", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestGetHandler(t *testing.T) {
	detail := sampleDetail(7)
	repo := &stubArticleRepo{getResult: map[int64]*repository.ArticleDetail{7: &detail}}
	mux := newMux(repo, &stubReferenceRepo{})

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/7", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var out article.DTO
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if out.ID != 7 {
			t.Errorf("id = %d, want 7", out.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/99", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/abc", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestCreateHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		detail := sampleDetail(11)
		repo := &stubArticleRepo{
			createID:  11,
			getResult: map[int64]*repository.ArticleDetail{11: &detail},
		}
		mux := newMux(repo, &stubReferenceRepo{})

		body := `{"title":"Install guide","summary":"How to install","source_url":"https://docs.example.com/install"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
		}
		if loc := rec.Header().Get("Location"); loc != "/api/articles/11" {
			t.Errorf("Location = %q, want /api/articles/11", loc)
		}

		var out article.DTO
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if out.ID != 11 {
			t.Errorf("id = %d, want 11", out.ID)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		mux := newMux(&stubArticleRepo{}, &stubReferenceRepo{})

		body := `{"title":"Install guide"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("invalid reference", func(t *testing.T) {
		repo := &stubArticleRepo{createErr: entity.ErrInvalidReference}
		mux := newMux(repo, &stubReferenceRepo{})

		body := `{"title":"t","summary":"s","source_url":"https://example.com","version_id":999}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &stubArticleRepo{createErr: errors.New("connection reset")}
		mux := newMux(repo, &stubReferenceRepo{})

		body := `{"title":"t","summary":"s","source_url":"https://example.com"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		mux := newMux(&stubArticleRepo{}, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader("{")))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		detail := sampleDetail(5)
		repo := &stubArticleRepo{getResult: map[int64]*repository.ArticleDetail{5: &detail}}
		mux := newMux(repo, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/articles/5",
			strings.NewReader(`{"title":"New title"}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("no updatable fields", func(t *testing.T) {
		mux := newMux(&stubArticleRepo{}, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/articles/5",
			strings.NewReader(`{"unknown_key":"x"}`)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		// The client mistake must be named in the body, not masked as an
		// internal error.
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if !strings.Contains(body["error"], "updatable fields") {
			t.Errorf("error = %q, want mention of updatable fields", body["error"])
		}
	})

	t.Run("null clears reference", func(t *testing.T) {
		detail := sampleDetail(5)
		repo := &stubArticleRepo{getResult: map[int64]*repository.ArticleDetail{5: &detail}}
		mux := newMux(repo, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/articles/5",
			strings.NewReader(`{"version_id":null}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		if !repo.lastUpdate.VersionID.Set || repo.lastUpdate.VersionID.Value != nil {
			t.Errorf("update version = %+v, want provided null", repo.lastUpdate.VersionID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubArticleRepo{updateErr: entity.ErrNotFound}
		mux := newMux(repo, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/articles/42",
			strings.NewReader(`{"title":"New title"}`)))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("invalid reference", func(t *testing.T) {
		repo := &stubArticleRepo{updateErr: entity.ErrInvalidReference}
		mux := newMux(repo, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/articles/5",
			strings.NewReader(`{"category_id":999}`)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mux := newMux(&stubArticleRepo{}, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/articles/3", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("body = %q, want empty", rec.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubArticleRepo{deleteErr: entity.ErrNotFound}
		mux := newMux(repo, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/articles/3", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		mux := newMux(&stubArticleRepo{}, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/articles/-1", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestSuggestHandler(t *testing.T) {
	t.Run("empty query skips store", func(t *testing.T) {
		repo := &stubArticleRepo{suggestResult: []string{"should not appear"}}
		mux := newMux(repo, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions?q=", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("body = %q, want []", got)
		}
		if repo.suggestCalls != 0 {
			t.Errorf("suggestCalls = %d, want 0", repo.suggestCalls)
		}
	})

	t.Run("matching titles", func(t *testing.T) {
		repo := &stubArticleRepo{suggestResult: []string{"Install guide", "Installation FAQ"}}
		mux := newMux(repo, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions?q=install", nil))

		var out []string
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(out) != 2 {
			t.Errorf("len = %d, want 2", len(out))
		}
	})
}

func TestTagsHandler(t *testing.T) {
	t.Run("tags for article", func(t *testing.T) {
		refRepo := &stubReferenceRepo{tags: []*entity.Tag{{ID: 1, Name: "setup"}, {ID: 2, Name: "linux"}}}
		mux := newMux(&stubArticleRepo{}, refRepo)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/7/tags", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var out []article.TagDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(out) != 2 || out[0].Name != "setup" {
			t.Errorf("unexpected tags: %+v", out)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		mux := newMux(&stubArticleRepo{}, &stubReferenceRepo{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/0/tags", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestRegister_AuthzWrapsMutatingRoutes(t *testing.T) {
	var protected []string
	authz := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected = append(protected, r.Method+" "+r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	detail := sampleDetail(1)
	repo := &stubArticleRepo{
		createID:  1,
		getResult: map[int64]*repository.ArticleDetail{1: &detail},
	}
	mux := http.NewServeMux()
	article.Register(mux, &artUC.Service{Repo: repo}, &refUC.Service{Repo: &stubReferenceRepo{}}, authz)

	// Read route must not pass through authz.
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	if len(protected) != 0 {
		t.Fatalf("GET /api/articles went through authz: %v", protected)
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/articles/1", nil))
	if len(protected) != 1 {
		t.Errorf("DELETE not wrapped, protected = %v", protected)
	}
}
