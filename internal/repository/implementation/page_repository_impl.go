package implementation

import (
	"context"

	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/mapper"
	"sitebuilder-be/internal/model"
	"sitebuilder-be/internal/repository/contract"

	"gorm.io/gorm"
)

type PageRepositoryImpl struct {
	*CrudRepositoryImpl[entity.Page, model.Page]
}

func NewPageRepository(db *gorm.DB) contract.PageRepository {
	return &PageRepositoryImpl{
		CrudRepositoryImpl: newCrudRepository[entity.Page, model.Page](db, mapper.NewPageMapper()),
	}
}

// ContentCounts tallies sections by type and direct feature group assignments per page.
func (r *PageRepositoryImpl) ContentCounts(ctx context.Context, pageIds []int) (map[int]*entity.PageCount, error) {
	counts := make(map[int]*entity.PageCount, len(pageIds))
	for _, id := range pageIds {
		counts[id] = &entity.PageCount{}
	}
	if len(pageIds) == 0 {
		return counts, nil
	}

	var sectionRows []struct {
		PageId      int
		SectionType string
		Total       int
	}
	err := r.db.WithContext(ctx).
		Model(&model.PageSection{}).
		Select("page_id, section_type, COUNT(*) AS total").
		Where("page_id IN ?", pageIds).
		Group("page_id, section_type").
		Scan(&sectionRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range sectionRows {
		c := counts[row.PageId]
		if c == nil {
			continue
		}
		c.Sections += row.Total
		switch entity.SectionType(row.SectionType) {
		case entity.SectionTypeHero:
			c.HeroSections += row.Total
		case entity.SectionTypeFeatures:
			c.FeatureGroups += row.Total
		case entity.SectionTypeMedia:
			c.MediaSections += row.Total
		}
	}

	var assignmentRows []struct {
		PageId int
		Total  int
	}
	err = r.db.WithContext(ctx).
		Model(&model.PageFeatureGroup{}).
		Select("page_id, COUNT(*) AS total").
		Where("page_id IN ?", pageIds).
		Group("page_id").
		Scan(&assignmentRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range assignmentRows {
		if c := counts[row.PageId]; c != nil {
			c.FeatureAssigned = row.Total
		}
	}
	return counts, nil
}
