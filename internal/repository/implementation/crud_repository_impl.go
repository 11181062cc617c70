package implementation

import (
	"context"
	"errors"

	"sitebuilder-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type entityMapper[E any, M any] interface {
	ToEntity(m *M) *E
	ToModel(e *E) *M
}

// CrudRepositoryImpl implements contract.CrudRepository for one entity/model pair.
type CrudRepositoryImpl[E any, M any] struct {
	db     *gorm.DB
	mapper entityMapper[E, M]
}

func newCrudRepository[E any, M any](db *gorm.DB, mapper entityMapper[E, M]) *CrudRepositoryImpl[E, M] {
	return &CrudRepositoryImpl[E, M]{db: db, mapper: mapper}
}

func (r *CrudRepositoryImpl[E, M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts the row together with any child rows the mapper carried over.
func (r *CrudRepositoryImpl[E, M]) Create(ctx context.Context, e *E) error {
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

// Update writes every column of the row itself. Child collections are managed separately.
func (r *CrudRepositoryImpl[E, M]) Update(ctx context.Context, e *E) error {
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return err
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

func (r *CrudRepositoryImpl[E, M]) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(new(M), id).Error
}

func (r *CrudRepositoryImpl[E, M]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	m := new(M)
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *CrudRepositoryImpl[E, M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*E, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.ToEntity(m))
	}
	return entities, nil
}

func (r *CrudRepositoryImpl[E, M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CrudRepositoryImpl[E, M]) DeleteAll(ctx context.Context, specs ...specification.Specification) error {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	return query.Delete(new(M)).Error
}

func (r *CrudRepositoryImpl[E, M]) NextSortOrder(ctx context.Context, specs ...specification.Specification) (int, error) {
	var max int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Select("COALESCE(MAX(sort_order), 0)").Row().Scan(&max); err != nil {
		return 0, err
	}
	return int(max) + 1, nil
}
