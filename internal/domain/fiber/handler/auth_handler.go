package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/middleware"
	"github.com/myjobsapp/myjobs-api/internal/normalize"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"github.com/tidwall/gjson"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(api fiber.Router) {
	users := api.Group("/users")
	users.Post("/faculty/register", middleware.RateLimiter(10, time.Minute), h.RegisterFaculty)
	users.Post("/recruiter/register", middleware.RateLimiter(10, time.Minute), h.RegisterRecruiter)
	users.Post("/login", middleware.RateLimiter(20, time.Minute), h.Login)
}

func (h *AuthHandler) RegisterFaculty(c *fiber.Ctx) error {
	var req dto.FacultyRegistrationRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	workPreference := normalize.WorkPreference(gjson.GetBytes(c.Body(), "work_preference"))

	resp, err := h.uc.RegisterFaculty(req, workPreference)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: resp.Message,
		Data:    resp,
	})
}

func (h *AuthHandler) RegisterRecruiter(c *fiber.Ctx) error {
	var req dto.RecruiterRegistrationRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.uc.RegisterRecruiter(req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: resp.Message,
		Data:    resp,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.uc.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: resp.Message,
		Data:    resp,
	})
}
