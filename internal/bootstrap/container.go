package bootstrap

import (
	"log"

	"sitebuilder-be/internal/config"
	"sitebuilder-be/internal/controller"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/pkg/mailer"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/internal/service"
	"sitebuilder-be/pkg/events"

	pktNats "sitebuilder-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PageController           controller.IPageController
	FeatureController        controller.IFeatureController
	FeatureGroupController   controller.IFeatureGroupController
	PageSectionController    controller.IPageSectionController
	HeaderConfigController   controller.IHeaderConfigController
	MenuController           controller.IMenuController
	ContentBlockController   controller.IContentBlockController
	FaqController            controller.IFaqController
	SiteSettingsController   controller.ISiteSettingsController
	FormSubmissionController controller.IFormSubmissionController
	PublicSiteController     controller.IPublicSiteController

	// Shared infrastructure
	Logger       logger.ILogger
	EmailService mailer.IEmailService

	natsPub *pktNats.Publisher
}

// Options swaps infrastructure in tests. Zero values mean "build from config".
type Options struct {
	Logger    logger.ILogger
	Publisher events.Publisher
	Mailer    mailer.IEmailService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	return NewContainerWithOptions(db, cfg, Options{})
}

func NewContainerWithOptions(db *gorm.DB, cfg *config.Config, opts Options) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	sysLogger := opts.Logger
	if sysLogger == nil {
		sysLogger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}

	// 2. Event bus (optional)
	c := &Container{Logger: sysLogger}
	publisher := opts.Publisher
	if publisher == nil && cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			c.natsPub = natsPub
			publisher = natsPub
		}
	}

	// 3. Mail transport, fed from site settings with the environment as fallback
	emailService := opts.Mailer
	if emailService == nil {
		emailService = mailer.NewEmailService(
			service.SMTPSettingsLoader(uowFactory),
			mailer.SMTPSettings{
				Host:      cfg.SMTP.Host,
				Port:      cfg.SMTP.Port,
				Username:  cfg.SMTP.Email,
				Password:  cfg.SMTP.Password,
				Secure:    cfg.SMTP.Secure,
				FromEmail: cfg.SMTP.Email,
				FromName:  cfg.SMTP.SenderName,
			},
			sysLogger,
		)
	}
	c.EmailService = emailService

	// 4. Services
	pageService := service.NewPageService(uowFactory, publisher, sysLogger)
	featureService := service.NewGlobalFeatureService(uowFactory, publisher, sysLogger)
	featureGroupService := service.NewFeatureGroupService(uowFactory, publisher, sysLogger)
	featureGroupItemService := service.NewFeatureGroupItemService(uowFactory, publisher, sysLogger)
	pageFeatureGroupService := service.NewPageFeatureGroupService(uowFactory, publisher, sysLogger)
	pageSectionService := service.NewPageSectionService(uowFactory, publisher, sysLogger)

	headerConfigService := service.NewHeaderConfigService(uowFactory, publisher, sysLogger)
	menuService := service.NewMenuService(uowFactory, publisher, sysLogger)

	ctaService := service.NewCTAService(uowFactory, publisher, sysLogger)
	heroSectionService := service.NewHeroSectionService(uowFactory, publisher, sysLogger)
	mediaSectionService := service.NewMediaSectionService(uowFactory, publisher, sysLogger)
	mediaSectionFeatureService := service.NewMediaSectionFeatureService(uowFactory, publisher, sysLogger)
	pricingSectionService := service.NewPricingSectionService(uowFactory, publisher, sysLogger)

	faqCategoryService := service.NewFaqCategoryService(uowFactory, publisher, sysLogger)
	faqService := service.NewFaqService(uowFactory, publisher, sysLogger)
	faqSectionService := service.NewFaqSectionService(uowFactory, publisher, sysLogger)

	pageBuilderService := service.NewPageBuilderService(uowFactory)
	siteSettingsService := service.NewSiteSettingsService(uowFactory, emailService, publisher, sysLogger)
	formSubmissionService := service.NewFormSubmissionService(uowFactory, emailService, sysLogger)
	publicSiteService := service.NewPublicSiteService(uowFactory)

	// 5. Controllers
	c.PageController = controller.NewPageController(pageService)
	c.FeatureController = controller.NewFeatureController(featureService)
	c.FeatureGroupController = controller.NewFeatureGroupController(featureGroupService, featureGroupItemService, pageFeatureGroupService)
	c.PageSectionController = controller.NewPageSectionController(pageSectionService)
	c.HeaderConfigController = controller.NewHeaderConfigController(headerConfigService)
	c.MenuController = controller.NewMenuController(menuService)
	c.ContentBlockController = controller.NewContentBlockController(
		ctaService,
		heroSectionService,
		mediaSectionService,
		mediaSectionFeatureService,
		pricingSectionService,
	)
	c.FaqController = controller.NewFaqController(faqCategoryService, faqService, faqSectionService)
	c.SiteSettingsController = controller.NewSiteSettingsController(siteSettingsService, pageBuilderService, sysLogger)
	c.FormSubmissionController = controller.NewFormSubmissionController(formSubmissionService)
	c.PublicSiteController = controller.NewPublicSiteController(publicSiteService)

	return c
}

// Close releases connections opened by the container.
func (c *Container) Close() {
	c.natsPub.Close()
	_ = c.Logger.Sync()
}
