package search

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=search_repo.go -destination=mock/search_repo_mock.go -package=mock
type Repository interface {
	// Find runs a case-insensitive contains match of term for one source.
	Find(ctx context.Context, src Source, term string, limit int) ([]Row, error)
	// Count reports how many rows of the source match term, without a limit.
	Count(ctx context.Context, src Source, term string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) matching(ctx context.Context, src Source, term string) *gorm.DB {
	like := "%" + escapeLike(strings.ToLower(term)) + "%"

	q := r.db.WithContext(ctx).Table(src.From)
	for _, j := range src.Joins {
		q = q.Joins(j)
	}

	conds := make([]string, 0, len(src.Match))
	args := make([]any, 0, len(src.Match))
	for _, col := range src.Match {
		conds = append(conds, "LOWER(COALESCE("+col+", '')) LIKE ? ESCAPE '\\'")
		args = append(args, like)
	}
	return q.Where(strings.Join(conds, " OR "), args...)
}

func (r *repository) Find(ctx context.Context, src Source, term string, limit int) ([]Row, error) {
	var rows []Row
	err := r.matching(ctx, src, term).
		Select(src.Select).
		Order("title ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context, src Source, term string) (int64, error) {
	var n int64
	err := r.matching(ctx, src, term).Count(&n).Error
	return n, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
