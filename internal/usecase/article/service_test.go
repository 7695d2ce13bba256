package article_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
	artUC "knowledge-hub/internal/usecase/article"
)

// stubRepo records calls and returns canned results.
type stubRepo struct {
	createID    int64
	createErr   error
	updateErr   error
	deleteErr   error
	getDetail   *repository.ArticleDetail
	getErr      error
	suggestions []string

	createdArticle *entity.Article
	lastUpdate     repository.ArticleUpdate
	lastFilters    repository.ArticleFilters
	suggestCalls   int
}

func (s *stubRepo) List(_ context.Context) ([]repository.ArticleDetail, error) {
	return nil, nil
}

func (s *stubRepo) Search(_ context.Context, f repository.ArticleFilters) ([]repository.ArticleDetail, error) {
	s.lastFilters = f
	return nil, nil
}

func (s *stubRepo) Get(_ context.Context, _ int64) (*repository.ArticleDetail, error) {
	return s.getDetail, s.getErr
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) (int64, error) {
	s.createdArticle = a
	return s.createID, s.createErr
}

func (s *stubRepo) Update(_ context.Context, _ int64, upd repository.ArticleUpdate) error {
	s.lastUpdate = upd
	return s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func (s *stubRepo) SuggestTitles(_ context.Context, _ string, _ int) ([]string, error) {
	s.suggestCalls++
	return s.suggestions, nil
}

func detail(id int64) *repository.ArticleDetail {
	return &repository.ArticleDetail{
		Article: &entity.Article{ID: id, Title: "t", Summary: "s",
			SourceURL: "https://docs.example.com", Status: entity.StatusPublished},
	}
}

func strPtr(s string) *string { return &s }

func TestService_Create_Success(t *testing.T) {
	stub := &stubRepo{createID: 10, getDetail: detail(10)}
	svc := artUC.Service{Repo: stub}

	got, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "Install guide", Summary: "Steps", SourceURL: "https://docs.example.com/install",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.Article.ID != 10 {
		t.Fatalf("ID = %d, want 10", got.Article.ID)
	}
	if stub.createdArticle.Status != entity.StatusPublished {
		t.Fatalf("Status = %q, want published default", stub.createdArticle.Status)
	}
}

func TestService_Create_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		in   artUC.CreateInput
	}{
		{"missing title", artUC.CreateInput{Summary: "s", SourceURL: "https://u.example"}},
		{"missing summary", artUC.CreateInput{Title: "t", SourceURL: "https://u.example"}},
		{"missing source_url", artUC.CreateInput{Title: "t", Summary: "s"}},
		{"whitespace title", artUC.CreateInput{Title: "   ", Summary: "s", SourceURL: "https://u.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubRepo{}
			svc := artUC.Service{Repo: stub}
			_, err := svc.Create(context.Background(), tt.in)
			var vErr *entity.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err=%v, want ValidationError", err)
			}
			if stub.createdArticle != nil {
				t.Fatal("repository must not be called on validation failure")
			}
		})
	}
}

func TestService_Create_InvalidReference(t *testing.T) {
	stub := &stubRepo{createErr: fmt.Errorf("Create: %w", entity.ErrInvalidReference)}
	svc := artUC.Service{Repo: stub}

	_, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "t", Summary: "s", SourceURL: "https://docs.example.com",
	})
	if !errors.Is(err, entity.ErrInvalidReference) {
		t.Fatalf("err=%v, want wrapped ErrInvalidReference", err)
	}
}

func TestService_Update_NoUpdatableFields(t *testing.T) {
	svc := artUC.Service{Repo: &stubRepo{}}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: 1})
	if !errors.Is(err, artUC.ErrNoUpdatableFields) {
		t.Fatalf("err=%v, want ErrNoUpdatableFields", err)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	stub := &stubRepo{updateErr: fmt.Errorf("Update: %w", entity.ErrNotFound)}
	svc := artUC.Service{Repo: stub}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: 404, Title: strPtr("x")})
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_Update_Success(t *testing.T) {
	stub := &stubRepo{getDetail: detail(5)}
	svc := artUC.Service{Repo: stub}

	got, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: 5, Title: strPtr("renamed"), Status: strPtr(entity.StatusDraft),
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Article.ID != 5 {
		t.Fatalf("ID = %d, want 5", got.Article.ID)
	}
	if stub.lastUpdate.Title == nil || *stub.lastUpdate.Title != "renamed" {
		t.Fatalf("update title = %v", stub.lastUpdate.Title)
	}
	if stub.lastUpdate.Summary != nil {
		t.Fatal("summary must not be updated when absent")
	}
}

func TestService_Update_ClearsReference(t *testing.T) {
	stub := &stubRepo{getDetail: detail(5)}
	svc := artUC.Service{Repo: stub}

	// An explicit null on a reference field counts as a provided field and
	// clears the reference rather than being treated as absent.
	_, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: 5, VersionID: repository.NullableID{Set: true},
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if !stub.lastUpdate.VersionID.Set || stub.lastUpdate.VersionID.Value != nil {
		t.Fatalf("update version = %+v, want provided null", stub.lastUpdate.VersionID)
	}
}

func TestService_Update_InvalidStatus(t *testing.T) {
	svc := artUC.Service{Repo: &stubRepo{}}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: 5, Status: strPtr("archived"),
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err=%v, want ValidationError", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := artUC.Service{Repo: &stubRepo{}}
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}

	svc = artUC.Service{Repo: &stubRepo{deleteErr: fmt.Errorf("Delete: %w", entity.ErrNotFound)}}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("Delete err=%v, want ErrArticleNotFound", err)
	}

	if err := svc.Delete(context.Background(), 0); !errors.Is(err, artUC.ErrInvalidArticleID) {
		t.Fatalf("Delete err=%v, want ErrInvalidArticleID", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := artUC.Service{Repo: &stubRepo{}}
	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("Get err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_Search_TrimsFilters(t *testing.T) {
	stub := &stubRepo{}
	svc := artUC.Service{Repo: stub}

	_, err := svc.Search(context.Background(), repository.ArticleFilters{
		Keyword: "  export ", Version: " 2.4 ",
	})
	if err != nil {
		t.Fatalf("Search err=%v", err)
	}
	if stub.lastFilters.Keyword != "export" || stub.lastFilters.Version != "2.4" {
		t.Fatalf("filters = %+v, want trimmed values", stub.lastFilters)
	}
}

func TestService_Suggest_EmptyQuerySkipsStore(t *testing.T) {
	stub := &stubRepo{suggestions: []string{"should not appear"}}
	svc := artUC.Service{Repo: stub}

	got, err := svc.Suggest(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Suggest err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
	if stub.suggestCalls != 0 {
		t.Fatalf("suggestCalls=%d, want 0 (store must not be touched)", stub.suggestCalls)
	}
}

func TestService_Suggest_NonEmptyQuery(t *testing.T) {
	stub := &stubRepo{suggestions: []string{"Exporting reports"}}
	svc := artUC.Service{Repo: stub}

	got, err := svc.Suggest(context.Background(), "export")
	if err != nil || len(got) != 1 {
		t.Fatalf("Suggest err=%v len=%d", err, len(got))
	}
	if stub.suggestCalls != 1 {
		t.Fatalf("suggestCalls=%d, want 1", stub.suggestCalls)
	}
}
