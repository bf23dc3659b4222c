package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/middleware"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router, authRequired fiber.Handler) {
	jobs := api.Group("/jobs", authRequired)

	// static segments first so they never bind to :id
	jobs.Get("/my", middleware.RequireRecruiter(), h.ListMine)
	jobs.Get("/statistics", middleware.RequireRecruiter(), h.Statistics)
	jobs.Get("/saved", middleware.RequireFaculty(), h.ListSaved)
	jobs.Post("/saved", middleware.RequireFaculty(), h.SaveJob)
	jobs.Delete("/saved/:job_id", middleware.RequireFaculty(), h.UnsaveJob)

	jobs.Get("/", h.List)
	jobs.Post("/", middleware.RequireRecruiter(), h.Create)

	jobs.Get("/:job_id/is-saved", middleware.RequireFaculty(), h.IsSaved)
	jobs.Get("/:job_id/applications", middleware.RequireRecruiter(), h.Applications)
	jobs.Post("/:job_id/applications", middleware.RequireFaculty(), h.Apply)
	jobs.Get("/:id/history", middleware.RequireRecruiter(), h.History)
	jobs.Patch("/:id/status", middleware.RequireRecruiter(), h.ChangeStatus)

	jobs.Get("/:id", h.Get)
	jobs.Put("/:id", middleware.RequireRecruiter(), h.Update)
	jobs.Patch("/:id", middleware.RequireRecruiter(), h.Update)
	jobs.Delete("/:id", middleware.RequireRecruiter(), h.Delete)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.List(middleware.Principal(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get jobs",
		Data:    jobs,
	})
}

func (h *JobHandler) ListMine(c *fiber.Ctx) error {
	jobs, err := h.uc.List(middleware.Principal(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get jobs",
		Data:    jobs,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	job, err := h.uc.Get(middleware.Principal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    job,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.JobCreateRequest
	pdfPath, err := h.bindJob(c, &req)
	if err != nil {
		return respondError(c, err)
	}
	job, err := h.uc.Create(middleware.Principal(c).UserID, req, pdfPath)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.JobUpdateRequest
	pdfPath, err := h.bindJob(c, &req)
	if err != nil {
		return respondError(c, err)
	}
	job, err := h.uc.Update(middleware.Principal(c).UserID, id, req, pdfPath)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update job",
		Data:    job,
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(middleware.Principal(c).UserID, id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete job",
	})
}

func (h *JobHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.JobStatusUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.ChangeStatus(middleware.Principal(c).UserID, id, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: resp.Message,
		Data:    resp,
	})
}

func (h *JobHandler) History(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	rows, err := h.uc.History(middleware.Principal(c).UserID, id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job status history",
		Data:    rows,
	})
}

func (h *JobHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.uc.Statistics(middleware.Principal(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job statistics",
		Data:    stats,
	})
}

func (h *JobHandler) SaveJob(c *fiber.Ctx) error {
	var req dto.SavedJobRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	if ferr := util.ValidateStruct(req); ferr != nil {
		return respondError(c, ferr)
	}
	saved, err := h.uc.SaveJob(middleware.Principal(c).UserID, req.JobID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success save job",
		Data:    saved,
	})
}

func (h *JobHandler) ListSaved(c *fiber.Ctx) error {
	saved, err := h.uc.ListSaved(middleware.Principal(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get saved jobs",
		Data:    saved,
	})
}

func (h *JobHandler) UnsaveJob(c *fiber.Ctx) error {
	jobID, err := paramID(c, "job_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.UnsaveJob(middleware.Principal(c).UserID, jobID); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success unsave job",
	})
}

func (h *JobHandler) IsSaved(c *fiber.Ctx) error {
	jobID, err := paramID(c, "job_id")
	if err != nil {
		return respondError(c, err)
	}
	saved, err := h.uc.IsSaved(middleware.Principal(c).UserID, jobID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get saved state",
		Data:    fiber.Map{"is_saved": saved},
	})
}

func (h *JobHandler) Apply(c *fiber.Ctx) error {
	jobID, err := paramID(c, "job_id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.JobApplicationRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	app, err := h.uc.Apply(middleware.Principal(c), jobID, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success apply to job",
		Data:    app,
	})
}

func (h *JobHandler) Applications(c *fiber.Ctx) error {
	jobID, err := paramID(c, "job_id")
	if err != nil {
		return respondError(c, err)
	}
	apps, err := h.uc.Applications(middleware.Principal(c).UserID, jobID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get applications",
		Data:    apps,
	})
}

// bindJob decodes a JSON body, or a multipart form with the fields in a
// "data" JSON value and the posting PDF under "pdf_document".
func (h *JobHandler) bindJob(c *fiber.Ctx, dest any) (string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return "", parseBody(c, dest)
	}

	pdfPath := ""
	if headers := form.File["pdf_document"]; len(headers) > 0 {
		if pdfPath, err = util.SaveUpload(c, headers[0], "jobs", 5); err != nil {
			return "", err
		}
	}
	if data := c.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), dest); err != nil {
			return "", util.NewFormError("validation failed", map[string]string{
				"data": "Malformed JSON in data field",
			})
		}
	}
	return pdfPath, nil
}
