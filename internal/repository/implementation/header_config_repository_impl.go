package implementation

import (
	"context"

	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/mapper"
	"sitebuilder-be/internal/model"
	"sitebuilder-be/internal/repository/contract"

	"gorm.io/gorm"
)

type HeaderConfigRepositoryImpl struct {
	*CrudRepositoryImpl[entity.HeaderConfig, model.HeaderConfig]
}

func NewHeaderConfigRepository(db *gorm.DB) contract.HeaderConfigRepository {
	return &HeaderConfigRepositoryImpl{
		CrudRepositoryImpl: newCrudRepository[entity.HeaderConfig, model.HeaderConfig](db, mapper.NewHeaderConfigMapper()),
	}
}

func (r *HeaderConfigRepositoryImpl) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&model.HeaderConfig{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}
