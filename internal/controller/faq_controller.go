package controller

import (
	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFaqController interface {
	RegisterRoutes(r fiber.Router)
}

type faqController struct {
	categories service.IFaqCategoryService
	faqs       service.IFaqService
	sections   service.IFaqSectionService
}

func NewFaqController(categories service.IFaqCategoryService, faqs service.IFaqService, sections service.IFaqSectionService) IFaqController {
	return &faqController{categories: categories, faqs: faqs, sections: sections}
}

func (c *faqController) RegisterRoutes(r fiber.Router) {
	cat := r.Group("/faq-categories")
	cat.Get("", c.GetCategories)
	cat.Post("", c.CreateCategory)
	cat.Get("/:id", c.ShowCategory)
	cat.Put("/:id?", c.UpdateCategory)
	cat.Delete("/:id?", c.DeleteCategory)

	faq := r.Group("/faqs")
	faq.Get("", c.GetFaqs)
	faq.Post("", c.CreateFaq)
	faq.Get("/:id", c.ShowFaq)
	faq.Put("/:id?", c.UpdateFaq)
	faq.Delete("/:id?", c.DeleteFaq)

	sec := r.Group("/faq-sections")
	sec.Get("", c.GetSections)
	sec.Post("", c.CreateSection)
	sec.Get("/:id", c.ShowSection)
	sec.Put("/:id?", c.UpdateSection)
	sec.Delete("/:id?", c.DeleteSection)
}

func (c *faqController) GetCategories(ctx *fiber.Ctx) error {
	res, err := c.categories.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get FAQ categories", res))
}

func (c *faqController) ShowCategory(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.categories.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show FAQ category", res))
}

func (c *faqController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.FaqCategoryRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.categories.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ category created", res))
}

func (c *faqController) UpdateCategory(ctx *fiber.Ctx) error {
	var req dto.FaqCategoryRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.categories.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ category updated", res))
}

func (c *faqController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.categories.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("FAQ category deleted", nil))
}

func (c *faqController) GetFaqs(ctx *fiber.Ctx) error {
	categoryId, err := serverutils.QueryID(ctx, "categoryId")
	if err != nil {
		return err
	}
	res, err := c.faqs.GetAll(ctx.UserContext(), categoryId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get FAQs", res))
}

func (c *faqController) ShowFaq(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.faqs.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show FAQ", res))
}

func (c *faqController) CreateFaq(ctx *fiber.Ctx) error {
	var req dto.FaqRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.faqs.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ created", res))
}

func (c *faqController) UpdateFaq(ctx *fiber.Ctx) error {
	var req dto.FaqRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.faqs.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ updated", res))
}

func (c *faqController) DeleteFaq(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.faqs.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("FAQ deleted", nil))
}

func (c *faqController) GetSections(ctx *fiber.Ctx) error {
	res, err := c.sections.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get FAQ sections", res))
}

func (c *faqController) ShowSection(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.sections.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show FAQ section", res))
}

func (c *faqController) CreateSection(ctx *fiber.Ctx) error {
	var req dto.FaqSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.sections.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ section created", res))
}

func (c *faqController) UpdateSection(ctx *fiber.Ctx) error {
	var req dto.FaqSectionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	id, err := serverutils.ResolveID(ctx, req.Id)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.sections.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ section updated", res))
}

func (c *faqController) DeleteSection(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.sections.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("FAQ section deleted", nil))
}
