package serverutils

import (
	"errors"

	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const genericErrorMessage = "Internal server error"

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON envelope.
// AppErrors keep their status and message, everything else becomes a logged 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

// WriteError renders err as a failure envelope. It is also used as fiber's ErrorHandler
// so that panics recovered by the recover middleware share the same shape.
func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	if appErr, ok := apperror.As(err); ok {
		return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Status, appErr.Message))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	ref := uuid.NewString()
	log.Error("HTTP", "Unhandled request error", map[string]interface{}{
		"error":     err.Error(),
		"ref":       ref,
		"method":    ctx.Method(),
		"path":      ctx.Path(),
		"requestId": ctx.GetRespHeader(fiber.HeaderXRequestID),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, genericErrorMessage+" (ref "+ref+")"))
}
