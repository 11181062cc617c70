package controller

import (
	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IContentBlockController serves the reusable blocks a page section can point at.
type IContentBlockController interface {
	RegisterRoutes(r fiber.Router)
}

type contentBlockController struct {
	ctas          service.ICTAService
	heroes        service.IHeroSectionService
	media         service.IMediaSectionService
	mediaFeatures service.IMediaSectionFeatureService
	pricing       service.IPricingSectionService
}

func NewContentBlockController(
	ctas service.ICTAService,
	heroes service.IHeroSectionService,
	media service.IMediaSectionService,
	mediaFeatures service.IMediaSectionFeatureService,
	pricing service.IPricingSectionService,
) IContentBlockController {
	return &contentBlockController{
		ctas:          ctas,
		heroes:        heroes,
		media:         media,
		mediaFeatures: mediaFeatures,
		pricing:       pricing,
	}
}

func (c *contentBlockController) RegisterRoutes(r fiber.Router) {
	cta := r.Group("/cta-buttons")
	cta.Get("", c.GetCTAs)
	cta.Post("", c.CreateCTA)
	cta.Get("/:id", c.ShowCTA)
	cta.Put("/:id?", c.UpdateCTA)
	cta.Delete("/:id?", c.DeleteCTA)

	hero := r.Group("/hero-sections")
	hero.Get("", c.GetHeroes)
	hero.Post("", c.CreateHero)
	hero.Get("/:id", c.ShowHero)
	hero.Put("/:id?", c.UpdateHero)
	hero.Delete("/:id?", c.DeleteHero)

	media := r.Group("/media-sections")
	media.Get("", c.GetMedia)
	media.Post("", c.CreateMedia)
	media.Get("/:id", c.ShowMedia)
	media.Put("/:id?", c.UpdateMedia)
	media.Delete("/:id?", c.DeleteMedia)

	chips := r.Group("/media-section-features")
	chips.Get("", c.GetMediaFeatures)
	chips.Post("", c.CreateMediaFeature)
	chips.Put("/:id?", c.UpdateMediaFeature)
	chips.Delete("/:id?", c.DeleteMediaFeature)

	pricing := r.Group("/pricing-sections")
	pricing.Get("", c.GetPricing)
	pricing.Post("", c.CreatePricing)
	pricing.Get("/:id", c.ShowPricing)
	pricing.Put("/:id?", c.UpdatePricing)
	pricing.Delete("/:id?", c.DeletePricing)
}

// ---- CTA buttons ----

func (c *contentBlockController) GetCTAs(ctx *fiber.Ctx) error {
	res, err := c.ctas.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all CTA buttons", res))
}

func (c *contentBlockController) ShowCTA(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.ctas.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show CTA button", res))
}

func (c *contentBlockController) CreateCTA(ctx *fiber.Ctx) error {
	var req dto.CreateCTARequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.ctas.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("CTA button created", res))
}

func (c *contentBlockController) UpdateCTA(ctx *fiber.Ctx) error {
	var req dto.UpdateCTARequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.ctas.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("CTA button updated", res))
}

func (c *contentBlockController) DeleteCTA(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.ctas.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("CTA button deleted", nil))
}

// ---- hero sections ----

func (c *contentBlockController) GetHeroes(ctx *fiber.Ctx) error {
	res, err := c.heroes.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all hero sections", res))
}

func (c *contentBlockController) ShowHero(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.heroes.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show hero section", res))
}

func (c *contentBlockController) CreateHero(ctx *fiber.Ctx) error {
	var req dto.HeroSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.heroes.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hero section created", res))
}

func (c *contentBlockController) UpdateHero(ctx *fiber.Ctx) error {
	var req dto.HeroSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.heroes.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hero section updated", res))
}

func (c *contentBlockController) DeleteHero(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.heroes.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Hero section deleted", nil))
}

// ---- media sections ----

func (c *contentBlockController) GetMedia(ctx *fiber.Ctx) error {
	res, err := c.media.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all media sections", res))
}

func (c *contentBlockController) ShowMedia(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.media.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show media section", res))
}

func (c *contentBlockController) CreateMedia(ctx *fiber.Ctx) error {
	var req dto.CreateMediaSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.media.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Media section created", res))
}

func (c *contentBlockController) UpdateMedia(ctx *fiber.Ctx) error {
	var req dto.UpdateMediaSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.media.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Media section updated", res))
}

func (c *contentBlockController) DeleteMedia(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.media.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Media section deleted", nil))
}

func (c *contentBlockController) GetMediaFeatures(ctx *fiber.Ctx) error {
	sectionId, err := serverutils.QueryID(ctx, "mediaSectionId")
	if err != nil {
		return err
	}
	res, err := c.mediaFeatures.GetAll(ctx.UserContext(), sectionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get media section features", res))
}

func (c *contentBlockController) CreateMediaFeature(ctx *fiber.Ctx) error {
	var req dto.CreateMediaSectionFeatureRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.mediaFeatures.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Media section feature created", res))
}

func (c *contentBlockController) UpdateMediaFeature(ctx *fiber.Ctx) error {
	var req dto.UpdateMediaSectionFeatureRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.mediaFeatures.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Media section feature updated", res))
}

func (c *contentBlockController) DeleteMediaFeature(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.mediaFeatures.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Media section feature deleted", nil))
}

// ---- pricing sections ----

func (c *contentBlockController) GetPricing(ctx *fiber.Ctx) error {
	res, err := c.pricing.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all pricing sections", res))
}

func (c *contentBlockController) ShowPricing(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.pricing.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show pricing section", res))
}

func (c *contentBlockController) CreatePricing(ctx *fiber.Ctx) error {
	var req dto.CreatePricingSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.pricing.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pricing section created", res))
}

func (c *contentBlockController) UpdatePricing(ctx *fiber.Ctx) error {
	var req dto.UpdatePricingSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.pricing.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pricing section updated", res))
}

func (c *contentBlockController) DeletePricing(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.pricing.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Pricing section deleted", nil))
}
