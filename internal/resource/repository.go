package resource

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/pkg"
)

// Repository is the generic GORM-backed data access component. One instance
// manages one backing table described by its Spec.
type Repository[T any] struct {
	db   *gorm.DB
	spec Spec
}

// NewRepository creates a Repository for the given Spec.
func NewRepository[T any](db *gorm.DB, spec Spec) *Repository[T] {
	return &Repository[T]{db: db, spec: spec}
}

// Spec returns the resource configuration.
func (r *Repository[T]) Spec() Spec { return r.spec }

// DB exposes the underlying handle for transactional compositions
// (see pkg.WithTx).
func (r *Repository[T]) DB() *gorm.DB { return r.db }

// List returns a paginated, sorted, filtered page of records. The count and
// the data page are computed from identically-applied filter scopes; the
// query builder is forked per invocation so no state leaks between calls.
func (r *Repository[T]) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[T], error) {
	base := r.db.WithContext(ctx).Model(new(T)).Scopes(
		r.filterScope(q.Filters),
		r.searchScope(q.Search),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var items []T
	if err := base.Scopes(
		r.sortScope(q.Sort),
		r.selectScope(q.Fields),
		paginate(q),
	).Find(&items).Error; err != nil {
		return nil, mapError(err)
	}

	return domain.NewPageResult(items, total, q), nil
}

// FindByID retrieves a single record by primary key.
func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &entity, nil
}

// Create inserts a new record.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// CreateMany inserts a batch of records atomically. Either every record is
// persisted or none are.
func (r *Repository[T]) CreateMany(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(&entities).Error; err != nil {
			return mapError(err)
		}
		return nil
	})
}

// Update saves changes to an existing record.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Delete removes a record by ID. A missing row yields domain.ErrNotFound so
// callers can distinguish "not found" from a transport error.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CanBeDeleted counts rows in each declared dependent table that reference
// the given id. CanDelete is true iff every blocking reference either has
// zero rows or is marked cascade-safe.
func (r *Repository[T]) CanBeDeleted(ctx context.Context, id uint) (*domain.DeleteGuard, error) {
	guard := &domain.DeleteGuard{
		CanDelete: true,
		BlockedBy: []domain.BlockingReference{},
	}

	for _, ref := range r.spec.Guards {
		var count int64
		err := r.db.WithContext(ctx).
			Table(ref.Table).
			Where(ref.Column+" = ?", id).
			Count(&count).Error
		if err != nil {
			return nil, mapError(err)
		}
		if count == 0 {
			continue
		}
		guard.BlockedBy = append(guard.BlockedBy, domain.BlockingReference{
			Table:   ref.Table,
			Field:   ref.Column,
			Count:   count,
			Cascade: ref.Cascade,
		})
		if !ref.Cascade {
			guard.CanDelete = false
		}
	}

	return guard, nil
}

// Stats returns the unfiltered record count. Recomputed on every call, no
// caching.
func (r *Repository[T]) Stats(ctx context.Context) (*domain.Stats, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, mapError(err)
	}
	return &domain.Stats{Total: total}, nil
}

// CountBy returns grouped record counts for the given column. The column is
// supplied by the owning module, never by callers.
func (r *Repository[T]) CountBy(ctx context.Context, column string) (map[string]int64, error) {
	var rows []struct {
		Value string
		Count int64
	}
	err := r.db.WithContext(ctx).
		Table(r.spec.Table).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, mapError(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Count
	}
	return counts, nil
}

// filterScope applies each declared filter conditionally: a filter only
// constrains the query when its key is present in the request. Query keys
// outside the declared set are ignored entirely.
func (r *Repository[T]) filterScope(filters map[string]string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(filters) == 0 {
			return db
		}

		for _, f := range r.spec.Filters {
			switch f.Kind {
			case FilterString:
				if v, ok := filters[f.Key]; ok {
					db = db.Where(f.Column+" = ?", v)
				}
			case FilterNumber:
				if v, ok := filters[f.Key]; ok {
					if n, err := strconv.ParseFloat(v, 64); err == nil {
						db = db.Where(f.Column+" = ?", n)
					}
				}
			case FilterBool:
				if v, ok := filters[f.Key]; ok {
					if b, err := strconv.ParseBool(v); err == nil {
						db = db.Where(f.Column+" = ?", b)
					}
				}
			case FilterRange:
				if v, ok := filters[f.Key]; ok {
					if n, err := strconv.ParseFloat(v, 64); err == nil {
						db = db.Where(f.Column+" = ?", n)
					}
				}
				if v, ok := filters[f.Key+"_min"]; ok {
					if n, err := strconv.ParseFloat(v, 64); err == nil {
						db = db.Where(f.Column+" >= ?", n)
					}
				}
				if v, ok := filters[f.Key+"_max"]; ok {
					if n, err := strconv.ParseFloat(v, 64); err == nil {
						db = db.Where(f.Column+" <= ?", n)
					}
				}
			}
		}
		return db
	}
}

// searchScope applies free-text search as a parenthesized OR group of
// case-insensitive substring matches across the declared searchable columns.
func (r *Repository[T]) searchScope(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(r.spec.SearchFields) == 0 {
			return db
		}

		pattern := "%" + strings.ToLower(term) + "%"
		conds := make([]string, 0, len(r.spec.SearchFields))
		args := make([]any, 0, len(r.spec.SearchFields))
		for _, col := range r.spec.SearchFields {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// sortScope resolves each sort key through the allow-list mapping, adding a
// secondary sort key per recognized pair in request order. When no pair
// resolves, the resource's default sort applies; the ultimate fallback is
// the primary key descending. Unsanitized input never reaches ORDER BY.
func (r *Repository[T]) sortScope(keys []domain.SortKey) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		applied := false
		for _, k := range keys {
			col, ok := r.spec.SortFields[k.Field]
			if !ok {
				continue
			}
			db = db.Order(col + " " + k.Direction)
			applied = true
		}
		if applied {
			return db
		}

		for _, k := range pkg.ParseSortKeys(r.spec.DefaultSort) {
			if col, ok := r.spec.SortFields[k.Field]; ok {
				db = db.Order(col + " " + k.Direction)
				applied = true
			}
		}
		if !applied {
			db = db.Order("id desc")
		}
		return db
	}
}

// selectScope applies the output projection. Fields reaching this point have
// already been validated and intersected with the caller's allow-list.
func (r *Repository[T]) selectScope(fields []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(fields) == 0 {
			return db
		}
		return db.Select(fields)
	}
}

// paginate applies LIMIT and OFFSET last.
func paginate(q domain.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.Limit)
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeConflict, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite
// driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
