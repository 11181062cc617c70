package unitofwork

import (
	"context"
	"fmt"

	"sitebuilder-be/internal/repository/contract"
	"sitebuilder-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback is a no-op once the transaction has been committed, so it can be deferred.
func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) PageRepository() contract.PageRepository {
	return implementation.NewPageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PageSectionRepository() contract.PageSectionRepository {
	return implementation.NewPageSectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PageFeatureGroupRepository() contract.PageFeatureGroupRepository {
	return implementation.NewPageFeatureGroupRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GlobalFeatureRepository() contract.GlobalFeatureRepository {
	return implementation.NewGlobalFeatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeatureGroupRepository() contract.FeatureGroupRepository {
	return implementation.NewFeatureGroupRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeatureGroupItemRepository() contract.FeatureGroupItemRepository {
	return implementation.NewFeatureGroupItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CTARepository() contract.CTARepository {
	return implementation.NewCTARepository(u.getDB())
}

func (u *UnitOfWorkImpl) HeroSectionRepository() contract.HeroSectionRepository {
	return implementation.NewHeroSectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MediaSectionRepository() contract.MediaSectionRepository {
	return implementation.NewMediaSectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MediaSectionFeatureRepository() contract.MediaSectionFeatureRepository {
	return implementation.NewMediaSectionFeatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PricingSectionRepository() contract.PricingSectionRepository {
	return implementation.NewPricingSectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PricingPlanRepository() contract.PricingPlanRepository {
	return implementation.NewPricingPlanRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FaqCategoryRepository() contract.FaqCategoryRepository {
	return implementation.NewFaqCategoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FaqRepository() contract.FaqRepository {
	return implementation.NewFaqRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FaqSectionRepository() contract.FaqSectionRepository {
	return implementation.NewFaqSectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HeaderConfigRepository() contract.HeaderConfigRepository {
	return implementation.NewHeaderConfigRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HeaderNavItemRepository() contract.HeaderNavItemRepository {
	return implementation.NewHeaderNavItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HeaderCTARepository() contract.HeaderCTARepository {
	return implementation.NewHeaderCTARepository(u.getDB())
}

func (u *UnitOfWorkImpl) HeaderConfigMenuRepository() contract.HeaderConfigMenuRepository {
	return implementation.NewHeaderConfigMenuRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MenuRepository() contract.MenuRepository {
	return implementation.NewMenuRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MenuItemRepository() contract.MenuItemRepository {
	return implementation.NewMenuItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SiteSettingsRepository() contract.SiteSettingsRepository {
	return implementation.NewSiteSettingsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FormSubmissionRepository() contract.FormSubmissionRepository {
	return implementation.NewFormSubmissionRepository(u.getDB())
}
