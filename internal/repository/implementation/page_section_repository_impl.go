package implementation

import (
	"context"

	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/mapper"
	"sitebuilder-be/internal/model"
	"sitebuilder-be/internal/repository/contract"

	"gorm.io/gorm"
)

type PageSectionRepositoryImpl struct {
	*CrudRepositoryImpl[entity.PageSection, model.PageSection]
}

func NewPageSectionRepository(db *gorm.DB) contract.PageSectionRepository {
	return &PageSectionRepositoryImpl{
		CrudRepositoryImpl: newCrudRepository[entity.PageSection, model.PageSection](db, mapper.NewPageSectionMapper()),
	}
}

func (r *PageSectionRepositoryImpl) Reorder(ctx context.Context, pageId int, sectionIds []int) error {
	seen := make(map[int]struct{}, len(sectionIds))
	for _, id := range sectionIds {
		if _, dup := seen[id]; dup {
			return contract.ErrSectionsOutsidePage
		}
		seen[id] = struct{}{}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&model.PageSection{}).
			Where("page_id = ? AND id IN ?", pageId, sectionIds).
			Count(&owned).Error; err != nil {
			return err
		}
		if int(owned) != len(sectionIds) {
			return contract.ErrSectionsOutsidePage
		}

		for i, id := range sectionIds {
			if err := tx.Model(&model.PageSection{}).
				Where("id = ? AND page_id = ?", id, pageId).
				Update("sort_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
