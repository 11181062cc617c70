package unitofwork

import (
	"context"

	"sitebuilder-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PageRepository() contract.PageRepository
	PageSectionRepository() contract.PageSectionRepository
	PageFeatureGroupRepository() contract.PageFeatureGroupRepository

	GlobalFeatureRepository() contract.GlobalFeatureRepository
	FeatureGroupRepository() contract.FeatureGroupRepository
	FeatureGroupItemRepository() contract.FeatureGroupItemRepository

	CTARepository() contract.CTARepository
	HeroSectionRepository() contract.HeroSectionRepository
	MediaSectionRepository() contract.MediaSectionRepository
	MediaSectionFeatureRepository() contract.MediaSectionFeatureRepository
	PricingSectionRepository() contract.PricingSectionRepository
	PricingPlanRepository() contract.PricingPlanRepository

	FaqCategoryRepository() contract.FaqCategoryRepository
	FaqRepository() contract.FaqRepository
	FaqSectionRepository() contract.FaqSectionRepository

	HeaderConfigRepository() contract.HeaderConfigRepository
	HeaderNavItemRepository() contract.HeaderNavItemRepository
	HeaderCTARepository() contract.HeaderCTARepository
	HeaderConfigMenuRepository() contract.HeaderConfigMenuRepository
	MenuRepository() contract.MenuRepository
	MenuItemRepository() contract.MenuItemRepository

	SiteSettingsRepository() contract.SiteSettingsRepository
	FormSubmissionRepository() contract.FormSubmissionRepository
}
