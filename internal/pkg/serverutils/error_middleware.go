package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/pkg/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

// ErrorHandlerMiddleware converts every error escaping a handler into the flat
// {"error": msg} / 500 wire shape. The kind distinction only survives in logs.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		details := map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		}
		if appErr, ok := apperr.As(err); ok {
			details["kind"] = string(appErr.Kind)
			if appErr.Raw != "" {
				details["raw_completion"] = appErr.Raw
			}
		}
		log.Error("http", "request failed", details)

		return ctx.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: err.Error()})
	}
}
