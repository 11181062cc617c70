package controller

import (
	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

type IPageSectionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Patch(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type pageSectionController struct {
	service service.IPageSectionService
}

func NewPageSectionController(service service.IPageSectionService) IPageSectionController {
	return &pageSectionController{service: service}
}

func (c *pageSectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/page-sections")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put("/:id?", c.Update)
	h.Patch("/:id?", c.Patch)
	h.Delete("/:id?", c.Delete)
}

func (c *pageSectionController) GetAll(ctx *fiber.Ctx) error {
	pageId, err := serverutils.QueryID(ctx, "pageId")
	if err != nil {
		return err
	}
	res, err := c.service.GetAll(ctx.UserContext(), pageId, ctx.Query("pageSlug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get page sections", res))
}

func (c *pageSectionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePageSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Section added", res))
}

func (c *pageSectionController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdatePageSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Section updated", res))
}

// Patch reorders a page's sections when the body says action "reorder"; any other
// body is a partial update.
func (c *pageSectionController) Patch(ctx *fiber.Ctx) error {
	if gjson.GetBytes(ctx.Body(), "action").String() != "reorder" {
		return c.Update(ctx)
	}

	var req dto.ReorderSectionsRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Reorder(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sections reordered", res))
}

func (c *pageSectionController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Section deleted", nil))
}
