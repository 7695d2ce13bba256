package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
)

type FAQRepo struct {
	db *sql.DB
}

func NewFAQRepo(db *sql.DB) repository.FAQRepository {
	return &FAQRepo{db: db}
}

func (repo *FAQRepo) ListFAQs(ctx context.Context, articleID *int64) ([]*entity.FAQ, error) {
	query := `
SELECT id, question, answer, article_id, created_at
FROM faqs`
	var args []any
	if articleID != nil {
		query += `
WHERE article_id = $1`
		args = append(args, *articleID)
	}
	query += `
ORDER BY created_at DESC`

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListFAQs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	faqs := make([]*entity.FAQ, 0, 16)
	for rows.Next() {
		var f entity.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.ArticleID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListFAQs: Scan: %w", err)
		}
		faqs = append(faqs, &f)
	}
	return faqs, rows.Err()
}
