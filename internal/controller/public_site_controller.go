package controller

import (
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IPublicSiteController serves the unauthenticated read API of the public website.
type IPublicSiteController interface {
	RegisterRoutes(r fiber.Router)
	Site(ctx *fiber.Ctx) error
	Page(ctx *fiber.Ctx) error
	Faq(ctx *fiber.Ctx) error
	ThemeCSS(ctx *fiber.Ctx) error
}

type publicSiteController struct {
	service service.IPublicSiteService
}

func NewPublicSiteController(service service.IPublicSiteService) IPublicSiteController {
	return &publicSiteController{service: service}
}

func (c *publicSiteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public")
	h.Get("/site", c.Site)
	h.Get("/pages/:slug", c.Page)
	h.Get("/faq/:category/:question", c.Faq)
	h.Get("/theme.css", c.ThemeCSS)
}

func (c *publicSiteController) Site(ctx *fiber.Ctx) error {
	res, err := c.service.Site(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get site", res))
}

func (c *publicSiteController) Page(ctx *fiber.Ctx) error {
	res, err := c.service.PageBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get page", res))
}

func (c *publicSiteController) Faq(ctx *fiber.Ctx) error {
	res, err := c.service.FaqDetail(ctx.UserContext(), ctx.Params("category"), ctx.Params("question"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get FAQ", res))
}

func (c *publicSiteController) ThemeCSS(ctx *fiber.Ctx) error {
	css, err := c.service.ThemeCSS(ctx.UserContext())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	ctx.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return ctx.SendString(css)
}
