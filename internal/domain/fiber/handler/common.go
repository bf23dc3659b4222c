package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/normalize"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"gorm.io/gorm"
)

// respondError maps usecase failures onto the error envelope. Anything not
// recognized is a 500.
func respondError(c *fiber.Ctx, err error) error {
	var ferr *util.FormError
	switch {
	case errors.As(err, &ferr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: ferr.Message,
			Details: ferr.Errors,
		})
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: usecase.ErrForbidden.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidPassword):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Something went wrong",
		}, err)
	}
}

// parseBody binds JSON after folding top-level camelCase keys to snake_case.
func parseBody(c *fiber.Ctx, dest any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(normalize.SnakeBody(body), dest); err != nil {
		return util.NewFormError("validation failed", map[string]string{
			"non_field_errors": "Malformed request body",
		})
	}
	return nil
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, usecase.ErrNotFound
	}
	return uint(id), nil
}
