package controller

import (
	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeatureGroupController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetItems(ctx *fiber.Ctx) error
	CreateItem(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
	DeleteItem(ctx *fiber.Ctx) error
	GetAssignments(ctx *fiber.Ctx) error
	CreateAssignment(ctx *fiber.Ctx) error
	UpdateAssignment(ctx *fiber.Ctx) error
	DeleteAssignment(ctx *fiber.Ctx) error
}

type featureGroupController struct {
	groups      service.IFeatureGroupService
	items       service.IFeatureGroupItemService
	assignments service.IPageFeatureGroupService
}

func NewFeatureGroupController(groups service.IFeatureGroupService, items service.IFeatureGroupItemService, assignments service.IPageFeatureGroupService) IFeatureGroupController {
	return &featureGroupController{groups: groups, items: items, assignments: assignments}
}

func (c *featureGroupController) RegisterRoutes(r fiber.Router) {
	g := r.Group("/feature-groups")
	g.Get("", c.GetAll)
	g.Post("", c.Create)
	g.Get("/:id", c.Show)
	g.Put("/:id?", c.Update)
	g.Delete("/:id?", c.Delete)

	i := r.Group("/feature-group-items")
	i.Get("", c.GetItems)
	i.Post("", c.CreateItem)
	i.Put("/:id?", c.UpdateItem)
	i.Delete("/:id?", c.DeleteItem)

	a := r.Group("/page-feature-groups")
	a.Get("", c.GetAssignments)
	a.Post("", c.CreateAssignment)
	a.Put("/:id?", c.UpdateAssignment)
	a.Delete("/:id?", c.DeleteAssignment)
}

func (c *featureGroupController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.groups.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all feature groups", res))
}

func (c *featureGroupController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.groups.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show feature group", res))
}

func (c *featureGroupController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureGroupRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.groups.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature group created", res))
}

func (c *featureGroupController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateFeatureGroupRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.groups.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature group updated", res))
}

func (c *featureGroupController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.groups.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feature group deleted", nil))
}

func (c *featureGroupController) GetItems(ctx *fiber.Ctx) error {
	groupId, err := serverutils.QueryID(ctx, "featureGroupId")
	if err != nil {
		return err
	}
	res, err := c.items.GetAll(ctx.UserContext(), groupId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get feature group items", res))
}

func (c *featureGroupController) CreateItem(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureGroupItemRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.items.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature added to group", res))
}

func (c *featureGroupController) UpdateItem(ctx *fiber.Ctx) error {
	var req dto.UpdateFeatureGroupItemRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.items.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature group item updated", res))
}

func (c *featureGroupController) DeleteItem(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.items.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feature removed from group", nil))
}

func (c *featureGroupController) GetAssignments(ctx *fiber.Ctx) error {
	pageId, err := serverutils.QueryID(ctx, "pageId")
	if err != nil {
		return err
	}
	res, err := c.assignments.GetAll(ctx.UserContext(), pageId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get page feature groups", res))
}

func (c *featureGroupController) CreateAssignment(ctx *fiber.Ctx) error {
	var req dto.CreatePageFeatureGroupRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.assignments.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature group assigned to page", res))
}

func (c *featureGroupController) UpdateAssignment(ctx *fiber.Ctx) error {
	var req dto.UpdatePageFeatureGroupRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.assignments.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Page feature group updated", res))
}

func (c *featureGroupController) DeleteAssignment(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.assignments.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feature group removed from page", nil))
}
