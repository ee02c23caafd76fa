package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrNotFound marks "the caller may not see or touch this row" failures.
// Services return it both for missing rows and rows owned by someone
// else, so the response does not leak existence.
var ErrNotFound = errors.New("not found")

// ErrorHandlerMiddleware converts service errors bubbling out of a
// handler into the JSON envelope. fiber.Error keeps its status code,
// ErrNotFound maps to 404, everything else is a 400 with the error text
// (constraint violations and the like propagate as rejected writes, not
// masked 500s).
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(FailResponse(fiberErr.Message))
		}

		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(FailResponse(err.Error()))
		}

		return ctx.Status(fiber.StatusBadRequest).JSON(FailResponse(err.Error()))
	}
}
