package controller

import (
	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IFeatureController serves the global feature library.
type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type featureController struct {
	service service.IGlobalFeatureService
}

func NewFeatureController(service service.IGlobalFeatureService) IFeatureController {
	return &featureController{service: service}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/features")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id?", c.Update)
	h.Delete("/:id?", c.Delete)
}

func (c *featureController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext(), ctx.Query("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all features", res))
}

func (c *featureController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show feature", res))
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateGlobalFeatureRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature created", res))
}

func (c *featureController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateGlobalFeatureRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Feature updated", res))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feature deleted", nil))
}
