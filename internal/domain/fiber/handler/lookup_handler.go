package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

// LookupHandler serves the public reference lists. Reads go straight to the
// repository; there is no business logic to put behind a usecase.
type LookupHandler struct {
	repo *repository.LookupRepository
}

func NewLookupHandler(repo *repository.LookupRepository) *LookupHandler {
	return &LookupHandler{repo: repo}
}

func (h *LookupHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/colleges", h.Colleges)
	api.Get("/degrees", h.Degrees)
	api.Get("/departments", h.Departments)
}

func (h *LookupHandler) Colleges(c *fiber.Ctx) error {
	items, err := h.repo.ListColleges()
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get colleges",
		Data:    items,
	})
}

func (h *LookupHandler) Degrees(c *fiber.Ctx) error {
	items, err := h.repo.ListDegrees()
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get degrees",
		Data:    items,
	})
}

func (h *LookupHandler) Departments(c *fiber.Ctx) error {
	items, err := h.repo.ListDepartments()
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get departments",
		Data:    items,
	})
}
