package controller

import (
	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMenuController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type menuController struct {
	service service.IMenuService
}

func NewMenuController(service service.IMenuService) IMenuController {
	return &menuController{service: service}
}

func (c *menuController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/menus")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id?", c.Update)
	h.Delete("/:id?", c.Delete)
}

func (c *menuController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all menus", res))
}

func (c *menuController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show menu", res))
}

func (c *menuController) Create(ctx *fiber.Ctx) error {
	var req dto.MenuRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Menu created", res))
}

func (c *menuController) Update(ctx *fiber.Ctx) error {
	var req dto.MenuRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Menu updated", res))
}

func (c *menuController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Menu deleted", nil))
}
