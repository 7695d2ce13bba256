package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"knowledge-hub/internal/domain/entity"
	"knowledge-hub/internal/repository"
)

type ReferenceRepo struct {
	db *sql.DB
}

func NewReferenceRepo(db *sql.DB) repository.ReferenceRepository {
	return &ReferenceRepo{db: db}
}

func (repo *ReferenceRepo) ListVersions(ctx context.Context) ([]*entity.Version, error) {
	const query = `SELECT id, label FROM versions ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListVersions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	versions := make([]*entity.Version, 0, 16)
	for rows.Next() {
		var v entity.Version
		if err := rows.Scan(&v.ID, &v.Label); err != nil {
			return nil, fmt.Errorf("ListVersions: Scan: %w", err)
		}
		versions = append(versions, &v)
	}
	return versions, rows.Err()
}

func (repo *ReferenceRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	const query = `SELECT id, name, description FROM categories ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("ListCategories: Scan: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *ReferenceRepo) ListModules(ctx context.Context) ([]*entity.Module, error) {
	const query = `SELECT id, name FROM modules ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListModules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	modules := make([]*entity.Module, 0, 16)
	for rows.Next() {
		var m entity.Module
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("ListModules: Scan: %w", err)
		}
		modules = append(modules, &m)
	}
	return modules, rows.Err()
}

func (repo *ReferenceRepo) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	const query = `SELECT id, name FROM tags ORDER BY name`
	return repo.scanTags(ctx, query)
}

func (repo *ReferenceRepo) ListArticleTags(ctx context.Context, articleID int64) ([]*entity.Tag, error) {
	const query = `
SELECT t.id, t.name
FROM tags t
INNER JOIN article_tags at ON at.tag_id = t.id
WHERE at.article_id = $1
ORDER BY t.name`
	return repo.scanTags(ctx, query, articleID)
}

func (repo *ReferenceRepo) scanTags(ctx context.Context, query string, args ...any) ([]*entity.Tag, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scanTags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*entity.Tag, 0, 16)
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanTags: Scan: %w", err)
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}
