package slug

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const fallbackBase = "item"

// Scope narrows the uniqueness check to siblings, e.g. rows sharing brand_id.
type Scope func(*gorm.DB) *gorm.DB

// ByColumn scopes the check to rows whose column equals value. A nil value
// matches rows where the column IS NULL.
func ByColumn(column string, value any) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if value == nil {
			return q.Where(fmt.Sprintf("%s IS NULL", column))
		}
		return q.Where(fmt.Sprintf("%s = ?", column), value)
	}
}

// UniqueInScope returns base (or base-2, base-3, ...) such that no other row of
// table inside scope already uses it, compared case-insensitively. excludeID
// keeps a row being updated from colliding with itself.
func UniqueInScope(
	ctx context.Context,
	db *gorm.DB,
	table string,
	base string,
	scope Scope,
	excludeID any,
) (string, error) {
	if base == "" {
		base = fallbackBase
	}

	candidate := base
	for i := 2; i < 1000; i++ {
		q := db.WithContext(ctx).Table(table)
		if scope != nil {
			q = scope(q)
		}
		if excludeID != nil {
			q = q.Where("id <> ?", excludeID)
		}

		var count int64
		if err := q.Where("LOWER(slug) = ?", strings.ToLower(candidate)).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}

		suffix := fmt.Sprintf("-%d", i)
		candidate = trimForSuffix(base, suffix) + suffix
	}

	return "", fmt.Errorf("no free slug for %q in %s", base, table)
}

func trimForSuffix(base, suffix string) string {
	keep := MaxLen - len(suffix)
	rs := []rune(base)
	if len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		return fallbackBase
	}
	return out
}
