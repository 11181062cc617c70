package controller

import (
	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

const (
	actionAddCta              = "addCta"
	actionRemoveCta           = "removeCta"
	actionToggleCtaVisibility = "toggleCtaVisibility"
)

type IHeaderConfigController interface {
	RegisterRoutes(r fiber.Router)
	GetActive(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Replace(ctx *fiber.Ctx) error
	AddCta(ctx *fiber.Ctx) error
	RemoveCta(ctx *fiber.Ctx) error
	ToggleCtaVisibility(ctx *fiber.Ctx) error
}

type headerConfigController struct {
	service service.IHeaderConfigService
}

func NewHeaderConfigController(service service.IHeaderConfigService) IHeaderConfigController {
	return &headerConfigController{service: service}
}

func (c *headerConfigController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/header-config")
	h.Get("", c.GetActive)
	h.Post("", c.Create)
	h.Post("/ctas", c.AddCta)
	h.Delete("/ctas/:id", c.RemoveCta)
	h.Patch("/ctas/:id/visibility", c.ToggleCtaVisibility)
	h.Put("/:id?", c.Replace)
}

func (c *headerConfigController) GetActive(ctx *fiber.Ctx) error {
	res, err := c.service.GetActive(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get header config", res))
}

func (c *headerConfigController) Create(ctx *fiber.Ctx) error {
	var req dto.HeaderConfigRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Replace(ctx.UserContext(), 0, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Header config saved", res))
}

// Replace overwrites the given configuration. Without an id a new active configuration is created.
// A body carrying an action is an incremental CTA edit on the active configuration instead.
func (c *headerConfigController) Replace(ctx *fiber.Ctx) error {
	switch action := gjson.GetBytes(ctx.Body(), "action").String(); action {
	case "":
	case actionAddCta:
		return c.AddCta(ctx)
	case actionRemoveCta, actionToggleCtaVisibility:
		return c.applyCtaAction(ctx)
	default:
		return apperror.BadRequest("Unknown header config action %q", action)
	}

	var req dto.HeaderConfigRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id := req.Id
	if ctx.Params("id") != "" {
		var err error
		if id, err = serverutils.ResolveID(ctx, req.Id); err != nil {
			return err
		}
	}
	res, err := c.service.Replace(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Header config saved", res))
}

func (c *headerConfigController) AddCta(ctx *fiber.Ctx) error {
	var req dto.AddHeaderCTARequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.AddCta(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("CTA added to header", res))
}

func (c *headerConfigController) RemoveCta(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.service.RemoveCta(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("CTA removed from header", res))
}

// ToggleCtaVisibility flips visibility, or sets it when the body carries isVisible.
func (c *headerConfigController) ToggleCtaVisibility(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	var req dto.ToggleHeaderCTARequest
	if len(ctx.Body()) > 0 {
		if err := serverutils.ParseBody(ctx, &req); err != nil {
			return err
		}
	}
	res, err := c.service.ToggleCtaVisibility(ctx.UserContext(), id, req.IsVisible)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Header CTA visibility updated", res))
}

func (c *headerConfigController) applyCtaAction(ctx *fiber.Ctx) error {
	var req dto.HeaderCTAActionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id := req.TargetId()
	if id == 0 {
		return apperror.BadRequest("headerCtaId is required")
	}

	if req.Action == actionRemoveCta {
		res, err := c.service.RemoveCta(ctx.UserContext(), id)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("CTA removed from header", res))
	}
	res, err := c.service.ToggleCtaVisibility(ctx.UserContext(), id, req.IsVisible)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Header CTA visibility updated", res))
}
