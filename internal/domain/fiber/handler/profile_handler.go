package handler

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/middleware"
	"github.com/myjobsapp/myjobs-api/internal/normalize"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"github.com/tidwall/gjson"
)

// Upload caps in MB per profile file field.
var profileUploadCaps = map[string]int64{
	"profile_photo": 5,
	"resume":        10,
	"transcripts":   5,
}

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(api fiber.Router, authRequired fiber.Handler) {
	users := api.Group("/users", authRequired)
	users.Get("/faculty/profile", middleware.RequireFaculty(), h.GetFacultyProfile)
	users.Put("/faculty/profile", middleware.RequireFaculty(), h.UpdateFacultyProfile)
	users.Patch("/faculty/profile", middleware.RequireFaculty(), h.UpdateFacultyProfile)
	users.Get("/recruiter/profile", middleware.RequireRecruiter(), h.GetRecruiterProfile)
	users.Put("/recruiter/profile", middleware.RequireRecruiter(), h.UpdateRecruiterProfile)
	users.Patch("/recruiter/profile", middleware.RequireRecruiter(), h.UpdateRecruiterProfile)
}

func (h *ProfileHandler) GetFacultyProfile(c *fiber.Ctx) error {
	resp, err := h.uc.GetFacultyProfile(middleware.Principal(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get faculty profile",
		Data:    resp,
	})
}

// UpdateFacultyProfile takes either a JSON body or a multipart form carrying
// one of the profile file fields.
func (h *ProfileHandler) UpdateFacultyProfile(c *fiber.Ctx) error {
	userID := middleware.Principal(c).UserID

	if form, err := c.MultipartForm(); err == nil && form != nil {
		return h.updateFacultyFiles(c, userID, form.File)
	}

	var req dto.FacultyProfileUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	prefValue := gjson.GetBytes(normalize.SnakeBody(c.Body()), "work_preference")
	workPreference := normalize.WorkPreference(prefValue)

	resp, err := h.uc.UpdateFacultyProfile(userID, req, workPreference, prefValue.Exists())
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update faculty profile",
		Data:    resp,
	})
}

func (h *ProfileHandler) updateFacultyFiles(c *fiber.Ctx, userID uint, files map[string][]*multipart.FileHeader) error {
	var resp *dto.FacultyProfileResponse
	for kind, maxMB := range profileUploadCaps {
		headers := files[kind]
		if len(headers) == 0 {
			continue
		}
		path, err := util.SaveUpload(c, headers[0], kind, maxMB)
		if err != nil {
			return respondError(c, err)
		}
		if resp, err = h.uc.SetFacultyUpload(userID, kind, path); err != nil {
			return respondError(c, err)
		}
	}
	if resp == nil {
		return respondError(c, util.NewFormError("validation failed", map[string]string{
			"file": "No recognized file field in the form",
		}))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update faculty profile",
		Data:    resp,
	})
}

func (h *ProfileHandler) GetRecruiterProfile(c *fiber.Ctx) error {
	resp, err := h.uc.GetRecruiterProfile(middleware.Principal(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get recruiter profile",
		Data:    resp,
	})
}

func (h *ProfileHandler) UpdateRecruiterProfile(c *fiber.Ctx) error {
	var req dto.RecruiterProfileUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.UpdateRecruiterProfile(middleware.Principal(c).UserID, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update recruiter profile",
		Data:    resp,
	})
}
