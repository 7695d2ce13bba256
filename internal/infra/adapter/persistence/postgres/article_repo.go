package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// scanDetail reads one joined article row. The scanner argument lets the
// same code serve both *sql.Rows and *sql.Row.
func scanDetail(scan func(dest ...any) error) (repository.ArticleDetail, error) {
	var article entity.Article
	var detail repository.ArticleDetail
	err := scan(&article.ID, &article.Title, &article.Summary, &article.SourceURL,
		&article.Status, &article.VersionID, &article.CategoryID, &article.ModuleID,
		&article.UpdatedAt,
		&detail.VersionLabel, &detail.CategoryName, &detail.ModuleName)
	detail.Article = &article
	return detail, err
}

func (repo *ArticleRepo) List(ctx context.Context) ([]repository.ArticleDetail, error) {
	return repo.Search(ctx, repository.ArticleFilters{})
}

func (repo *ArticleRepo) Search(ctx context.Context, filters repository.ArticleFilters) ([]repository.ArticleDetail, error) {
	query, args := repo.queryBuilder.Build(filters)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleDetail, 0, 100)
	for rows.Next() {
		detail, err := scanDetail(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*repository.ArticleDetail, error) {
	const query = `
SELECT a.id, a.title, a.summary, a.source_url, a.status,
       a.version_id, a.category_id, a.module_id, a.updated_at,
       v.label AS version_label, c.name AS category_name, m.name AS module_name
FROM articles a
LEFT JOIN versions v   ON a.version_id  = v.id
LEFT JOIN categories c ON a.category_id = c.id
LEFT JOIN modules m    ON a.module_id   = m.id
WHERE a.id = $1
LIMIT 1`
	detail, err := scanDetail(repo.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &detail, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (int64, error) {
	const query = `
INSERT INTO articles
       (title, summary, source_url, status, version_id, category_id, module_id, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Summary, article.SourceURL, article.Status,
		article.VersionID, article.CategoryID, article.ModuleID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("Create: %w", mapConstraintErr(err))
	}
	return id, nil
}

// Update applies only the provided fields of upd, mapped through an explicit
// field-to-column table; request keys outside this allow-list never reach
// the statement. A provided-but-null reference field binds SQL NULL, clearing
// the column. updated_at is always refreshed.
func (repo *ArticleRepo) Update(ctx context.Context, id int64, upd repository.ArticleUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Summary != nil {
		set("summary", *upd.Summary)
	}
	if upd.SourceURL != nil {
		set("source_url", *upd.SourceURL)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.VersionID.Set {
		set("version_id", upd.VersionID.Value)
	}
	if upd.CategoryID.Set {
		set("category_id", upd.CategoryID.Value)
	}
	if upd.ModuleID.Set {
		set("module_id", upd.ModuleID.Value)
	}
	if len(sets) == 0 {
		return fmt.Errorf("Update: %w: no fields to update", entity.ErrInvalidInput)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("Update: %w", mapConstraintErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) SuggestTitles(ctx context.Context, q string, limit int) ([]string, error) {
	const query = `
SELECT DISTINCT title
FROM articles
WHERE status = 'published'
  AND (LOWER(title) LIKE $1 OR LOWER(summary) LIKE $1)
LIMIT $2`
	param := likePattern(q)
	rows, err := repo.db.QueryContext(ctx, query, param, limit)
	if err != nil {
		return nil, fmt.Errorf("SuggestTitles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	titles := make([]string, 0, limit)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("SuggestTitles: Scan: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}
