package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/middleware"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"github.com/tidwall/gjson"
)

type TranscriptHandler struct {
	uc *usecase.TranscriptUsecase
}

func NewTranscriptHandler(uc *usecase.TranscriptUsecase) *TranscriptHandler {
	return &TranscriptHandler{uc: uc}
}

func (h *TranscriptHandler) RegisterRoutes(api fiber.Router, authRequired fiber.Handler) {
	// per-route RequireFaculty: the /users prefix also serves recruiter routes
	users := api.Group("/users", authRequired)
	faculty := middleware.RequireFaculty()
	for _, r := range []fiber.Router{users, users.Group("/faculty/profile")} {
		r.Get("/transcripts", faculty, h.List)
		r.Post("/transcripts", faculty, h.Create)
		r.Get("/transcripts/:id", faculty, h.Get)
		r.Put("/transcripts/:id", faculty, h.Update)
		r.Patch("/transcripts/:id", faculty, h.Update)
		r.Delete("/transcripts/:id", faculty, h.Delete)
	}
}

func (h *TranscriptHandler) List(c *fiber.Ctx) error {
	transcripts, err := h.uc.List(middleware.Principal(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get transcripts",
		Data:    transcripts,
	})
}

func (h *TranscriptHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Get(middleware.Principal(c).UserID, id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get transcript",
		Data:    resp,
	})
}

func (h *TranscriptHandler) Create(c *fiber.Ctx) error {
	body, filePath, err := h.payload(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Create(middleware.Principal(c).UserID, body, filePath)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create transcript",
		Data:    resp,
	})
}

func (h *TranscriptHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	body, filePath, err := h.payload(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Update(middleware.Principal(c).UserID, id, body, filePath)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update transcript",
		Data:    resp,
	})
}

func (h *TranscriptHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(middleware.Principal(c).UserID, id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete transcript",
	})
}

// payload extracts the JSON document and optional file. Multipart requests
// carry the fields as form values, with nested values (courses) sent as JSON
// strings; those are folded back into one JSON object for the usecase.
func (h *TranscriptHandler) payload(c *fiber.Ctx) ([]byte, string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return c.Body(), "", nil
	}

	filePath := ""
	if headers := form.File["file"]; len(headers) > 0 {
		if filePath, err = util.SaveUpload(c, headers[0], "transcripts", 5); err != nil {
			return nil, "", err
		}
	}

	if data := c.FormValue("data"); data != "" {
		return []byte(data), filePath, nil
	}

	obj := map[string]any{}
	for key, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		v := values[0]
		if parsed := gjson.Parse(v); parsed.IsArray() || parsed.IsObject() {
			obj[key] = json.RawMessage(v)
		} else {
			obj[key] = v
		}
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, "", err
	}
	return body, filePath, nil
}
