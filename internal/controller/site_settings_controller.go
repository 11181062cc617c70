package controller

import (
	"strconv"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"
	"sitebuilder-be/pkg/icons"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultIconLimit = 60
	defaultLogLimit  = 100
)

// ISiteSettingsController covers site-wide admin screens: settings, page builder
// catalog, icon picker and the log viewer.
type ISiteSettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetSettings(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
	SendTestEmail(ctx *fiber.Ctx) error
	Catalog(ctx *fiber.Ctx) error
	SearchIcons(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogById(ctx *fiber.Ctx) error
}

type siteSettingsController struct {
	settings service.ISiteSettingsService
	builder  service.IPageBuilderService
	log      logger.ILogger
}

func NewSiteSettingsController(settings service.ISiteSettingsService, builder service.IPageBuilderService, log logger.ILogger) ISiteSettingsController {
	return &siteSettingsController{settings: settings, builder: builder, log: log}
}

func (c *siteSettingsController) RegisterRoutes(r fiber.Router) {
	r.Get("/site-settings", c.GetSettings)
	r.Put("/site-settings", c.UpdateSettings)
	r.Post("/site-settings/test-email", c.SendTestEmail)
	r.Get("/page-builder-content", c.Catalog)
	r.Get("/icons", c.SearchIcons)
	r.Get("/logs", c.GetLogs)
	r.Get("/logs/:id", c.GetLogById)
}

func (c *siteSettingsController) GetSettings(ctx *fiber.Ctx) error {
	res, err := c.settings.Get(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get site settings", res))
}

func (c *siteSettingsController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateSiteSettingsRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.settings.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Site settings updated", res))
}

func (c *siteSettingsController) SendTestEmail(ctx *fiber.Ctx) error {
	var req dto.TestEmailRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.settings.SendTestEmail(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *siteSettingsController) Catalog(ctx *fiber.Ctx) error {
	res, err := c.builder.Catalog(ctx.UserContext(), ctx.Query("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get page builder content", res))
}

func (c *siteSettingsController) SearchIcons(ctx *fiber.Ctx) error {
	limit, err := queryInt(ctx, "limit", defaultIconLimit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search icons", fiber.Map{
		"libraries": icons.Libraries(),
		"icons":     icons.Search(ctx.Query("library"), ctx.Query("q"), limit),
	}))
}

func (c *siteSettingsController) GetLogs(ctx *fiber.Ctx) error {
	limit, err := queryInt(ctx, "limit", defaultLogLimit)
	if err != nil {
		return err
	}
	offset, err := queryInt(ctx, "offset", 0)
	if err != nil {
		return err
	}
	res, err := c.log.GetLogs(ctx.Query("level"), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *siteSettingsController) GetLogById(ctx *fiber.Ctx) error {
	res, err := c.log.GetLogById(ctx.Params("id"))
	if err != nil {
		return apperror.NotFound("Log entry not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log", res))
}

func queryInt(ctx *fiber.Ctx, key string, def int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, apperror.BadRequest("%s must be a non-negative integer", key)
	}
	return v, nil
}
