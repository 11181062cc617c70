package controller

import (
	"bytes"
	"fmt"
	"time"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/serverutils"
	"sitebuilder-be/internal/service"
	"sitebuilder-be/pkg/export"

	"github.com/gofiber/fiber/v2"
)

type IFormSubmissionController interface {
	RegisterRoutes(r fiber.Router)
	RegisterPublicRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	RetryEmail(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type formSubmissionController struct {
	service service.IFormSubmissionService
}

func NewFormSubmissionController(service service.IFormSubmissionService) IFormSubmissionController {
	return &formSubmissionController{service: service}
}

func (c *formSubmissionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/form-submissions")
	h.Get("", c.GetAll)
	h.Get("/export", c.Export)
	h.Get("/:id", c.Show)
	h.Post("/:id/retry-email", c.RetryEmail)
	h.Delete("/:id?", c.Delete)
}

func (c *formSubmissionController) RegisterPublicRoutes(r fiber.Router) {
	r.Post("/forms/submit", c.Submit)
}

func (c *formSubmissionController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitFormRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Submit(ctx.UserContext(), &req, ctx.IP(), ctx.Get(fiber.HeaderUserAgent))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Form submitted", res))
}

func parseSubmissionFilter(ctx *fiber.Ctx) (dto.FormSubmissionFilter, error) {
	filter := dto.FormSubmissionFilter{
		Status:   ctx.Query("status"),
		FormName: ctx.Query("formName"),
	}
	var err error
	if filter.From, err = serverutils.QueryDate(ctx, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = serverutils.QueryDate(ctx, "to"); err != nil {
		return filter, err
	}
	// A bare date as upper bound includes the whole day
	if filter.To != nil && filter.To.Equal(filter.To.Truncate(24*time.Hour)) {
		end := filter.To.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	if filter.Limit, err = queryInt(ctx, "limit", 0); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(ctx, "offset", 0); err != nil {
		return filter, err
	}
	return filter, nil
}

func (c *formSubmissionController) GetAll(ctx *fiber.Ctx) error {
	filter, err := parseSubmissionFilter(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.GetAll(ctx.UserContext(), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get form submissions", res))
}

func (c *formSubmissionController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show form submission", res))
}

// Export streams a CSV or XLSX attachment instead of the JSON envelope.
func (c *formSubmissionController) Export(ctx *fiber.Ctx) error {
	filter, err := parseSubmissionFilter(ctx)
	if err != nil {
		return err
	}
	format := ctx.Query("format", export.FormatCSV)

	var buf bytes.Buffer
	if err := c.service.Export(ctx.UserContext(), filter, format, &buf); err != nil {
		return err
	}

	filename := fmt.Sprintf("form-submissions-%s.%s", time.Now().UTC().Format("20060102-150405"), format)
	ctx.Attachment(filename)
	ctx.Set(fiber.HeaderContentType, export.ContentType(format))
	return ctx.Send(buf.Bytes())
}

func (c *formSubmissionController) RetryEmail(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	res, err := c.service.RetryEmail(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Notification email retried", res))
}

func (c *formSubmissionController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ResolveID(ctx, 0)
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Form submission deleted", nil))
}
