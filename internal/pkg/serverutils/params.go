package serverutils

import (
	"strconv"
	"time"

	"sitebuilder-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ResolveID reads the target id from the path, then the query string, then the body.
// The admin UI sends PUT ids in the body and DELETE ids as ?id=.
func ResolveID(ctx *fiber.Ctx, bodyId int) (int, error) {
	if raw := ctx.Params("id"); raw != "" {
		return parsePositive(raw, "id")
	}
	if raw := ctx.Query("id"); raw != "" {
		return parsePositive(raw, "id")
	}
	if bodyId > 0 {
		return bodyId, nil
	}
	return 0, apperror.BadRequest("id is required")
}

// QueryID parses an optional positive integer query parameter. Missing yields 0.
func QueryID(ctx *fiber.Ctx, key string) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, nil
	}
	return parsePositive(raw, key)
}

// QueryDate parses an optional YYYY-MM-DD or RFC3339 query parameter.
func QueryDate(ctx *fiber.Ctx, key string) (*time.Time, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperror.BadRequest("%s must be a date (YYYY-MM-DD)", key)
}

// ParseBody decodes the JSON body and validates it.
func ParseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	return ValidateRequest(req)
}

func parsePositive(raw, key string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("%s must be a positive integer", key)
	}
	return id, nil
}
