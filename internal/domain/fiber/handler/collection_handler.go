package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/middleware"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

// CollectionHandler serves the repeatable CV sections. Every family gets the
// same five routes; the per-entity wiring is the apply/setOwner pair.
type CollectionHandler struct {
	uc *usecase.ProfileUsecase
}

func NewCollectionHandler(uc *usecase.ProfileUsecase) *CollectionHandler {
	return &CollectionHandler{uc: uc}
}

func (h *CollectionHandler) RegisterRoutes(api fiber.Router, authRequired fiber.Handler) {
	// RequireFaculty rides on each route, not on the group: the /users prefix
	// is shared with recruiter routes registered elsewhere.
	users := api.Group("/users", authRequired)
	// legacy prefix kept for older frontend builds
	legacy := users.Group("/faculty/profile")
	faculty := middleware.RequireFaculty()

	for _, r := range []fiber.Router{users, legacy} {
		registerSection(r, faculty, h.uc, "educations", "education", "created_at DESC",
			applyEducation, func(m *model.Education, pid uint) { m.ProfileID = pid })
		registerSection(r, faculty, h.uc, "certificates", "certificate", "created_at DESC",
			applyCertificate, func(m *model.Certificate, pid uint) { m.ProfileID = pid })
		registerSection(r, faculty, h.uc, "memberships", "membership", "created_at DESC",
			applyMembership, func(m *model.Membership, pid uint) { m.ProfileID = pid })
		registerSection(r, faculty, h.uc, "experiences", "experience", "created_at DESC",
			applyExperience, func(m *model.Experience, pid uint) { m.ProfileID = pid })
		registerSection(r, faculty, h.uc, "skills", "skill", "id",
			applySkill, func(m *model.Skill, pid uint) { m.ProfileID = pid })
		registerSection(r, faculty, h.uc, "presentations", "presentation", "id",
			applyPresentation, func(m *model.Presentation, pid uint) { m.ProfileID = pid })
		h.registerDocuments(r, faculty)
	}
}

func registerSection[M, R any](r fiber.Router, faculty fiber.Handler, uc *usecase.ProfileUsecase, slug, label, order string, apply func(*M, *R), setOwner func(*M, uint)) {
	r.Get("/"+slug, faculty, func(c *fiber.Ctx) error {
		var items []M
		if err := uc.ListSection(middleware.Principal(c).UserID, &items, order); err != nil {
			return respondError(c, err)
		}
		if items == nil {
			items = []M{}
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success get " + slug,
			Data:    items,
		})
	})

	r.Post("/"+slug, faculty, func(c *fiber.Ctx) error {
		var req R
		if err := parseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if ferr := util.ValidateStruct(req); ferr != nil {
			return respondError(c, ferr)
		}
		var m M
		apply(&m, &req)
		err := uc.CreateSection(middleware.Principal(c).UserID, &m, func(pid uint) { setOwner(&m, pid) })
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:    fiber.StatusCreated,
			Message: "Success create " + label,
			Data:    m,
		})
	})

	r.Get("/"+slug+"/:id", faculty, func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var m M
		if err := uc.FindSection(middleware.Principal(c).UserID, &m, id); err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success get " + label,
			Data:    m,
		})
	})

	update := func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var m M
		if err := uc.FindSection(middleware.Principal(c).UserID, &m, id); err != nil {
			return respondError(c, err)
		}
		var req R
		if err := parseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if ferr := util.ValidateStruct(req); ferr != nil {
			return respondError(c, ferr)
		}
		apply(&m, &req)
		if err := uc.SaveSection(&m); err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success update " + label,
			Data:    m,
		})
	}
	r.Put("/"+slug+"/:id", faculty, update)
	r.Patch("/"+slug+"/:id", faculty, update)

	r.Delete("/"+slug+"/:id", faculty, func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var m M
		if err := uc.DeleteSection(middleware.Principal(c).UserID, &m, id); err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success delete " + label,
		})
	})
}

// Documents carry a file, so creation also accepts a multipart form with the
// metadata in the form values.
func (h *CollectionHandler) registerDocuments(r fiber.Router, faculty fiber.Handler) {
	registerSection(r, faculty, h.uc, "documents", "document", "uploaded_at DESC",
		applyDocument, func(m *model.Document, pid uint) { m.ProfileID = pid })

	// multipart create overrides the JSON route when a form is present
	r.Post("/documents/upload", faculty, func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return respondError(c, util.NewFormError("validation failed", map[string]string{
				"file": "This field is required",
			}))
		}
		path, err := util.SaveUpload(c, file, "documents", 5)
		if err != nil {
			return respondError(c, err)
		}

		name := c.FormValue("name")
		if name == "" {
			name = file.Filename
		}
		sizeMB := float64(file.Size) / (1024 * 1024)
		m := model.Document{
			Name:    name,
			DocType: c.FormValue("doc_type"),
			File:    path,
			Size:    &sizeMB,
		}
		err = h.uc.CreateSection(middleware.Principal(c).UserID, &m, func(pid uint) { m.ProfileID = pid })
		if err != nil {
			return respondError(c, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:    fiber.StatusCreated,
			Message: "Success create document",
			Data:    m,
		})
	})
}

func applyEducation(m *model.Education, req *dto.EducationRequest) {
	m.Degree = req.Degree
	m.Specialization = req.Specialization
	m.University = req.University
	m.Program = req.Program
	m.Year = req.Year
	m.IsResearch = req.IsResearch
	m.DissertationTitle = req.DissertationTitle
	m.Abstract = req.Abstract
}

func applyCertificate(m *model.Certificate, req *dto.CertificateRequest) {
	m.Name = req.Name
	m.Number = req.Number
	m.Provider = req.Provider
	m.IssueDate = datePtr(req.IssueDate)
	m.ExpiryDate = datePtr(req.ExpiryDate)
}

func applyMembership(m *model.Membership, req *dto.MembershipRequest) {
	m.Organization = req.Organization
	m.MembershipID = req.MembershipID
	m.StartDate = datePtr(req.StartDate)
	m.EndDate = datePtr(req.EndDate)
	m.IsCurrent = req.IsCurrent
}

func applyExperience(m *model.Experience, req *dto.ExperienceRequest) {
	m.ExpType = req.ExpType
	if m.ExpType == "" {
		m.ExpType = model.ExperienceAcademic
	}
	m.InstitutionOrCompany = req.InstitutionOrCompany
	m.Position = req.Position
	m.Responsibilities = req.Responsibilities
	m.StartDate = datePtr(req.StartDate)
	m.EndDate = datePtr(req.EndDate)
	m.IsCurrent = req.IsCurrent
}

func applySkill(m *model.Skill, req *dto.SkillRequest) {
	m.Skill = req.Skill
	m.Proficiency = req.Proficiency
	if m.Proficiency == "" {
		m.Proficiency = "Beginner"
	}
}

func applyPresentation(m *model.Presentation, req *dto.PresentationRequest) {
	m.Title = req.Title
	m.Date = datePtr(req.Date)
	m.Venue = req.Venue
}

func applyDocument(m *model.Document, req *dto.DocumentRequest) {
	m.Name = req.Name
	m.DocType = req.DocType
	m.Size = req.Size
}

func datePtr(d *dto.Date) *time.Time {
	if d == nil {
		return nil
	}
	return d.Ptr()
}
