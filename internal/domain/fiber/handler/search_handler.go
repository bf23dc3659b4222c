package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/middleware"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

type SearchHandler struct {
	uc *usecase.SearchUsecase
}

func NewSearchHandler(uc *usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(api fiber.Router, authRequired fiber.Handler) {
	recruiter := api.Group("/users/recruiter", authRequired, middleware.RequireRecruiter())
	recruiter.Get("/faculty-search", h.Search)
	recruiter.Get("/faculty/:user_id/details", h.Detail)
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	items, pagination, err := h.uc.SearchFaculty(c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success search faculty",
		Data:       items,
		Pagination: pagination,
	})
}

func (h *SearchHandler) Detail(c *fiber.Ctx) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return respondError(c, err)
	}
	detail, err := h.uc.FacultyDetail(userID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get faculty details",
		Data:    detail,
	})
}
