package dto

// Request shapes for the repeatable CV sections. camelCase keys are folded to
// snake_case before binding.

type EducationRequest struct {
	Degree            string `json:"degree" validate:"required"`
	Specialization    string `json:"specialization"`
	University        string `json:"university" validate:"required"`
	Program           string `json:"program"`
	Year              *int   `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	IsResearch        bool   `json:"is_research"`
	DissertationTitle string `json:"dissertation_title"`
	Abstract          string `json:"abstract"`
}

type CertificateRequest struct {
	Name       string `json:"name" validate:"required"`
	Number     string `json:"number"`
	Provider   string `json:"provider"`
	IssueDate  *Date  `json:"issue_date"`
	ExpiryDate *Date  `json:"expiry_date"`
}

type MembershipRequest struct {
	Organization string `json:"organization" validate:"required"`
	MembershipID string `json:"membership_id"`
	StartDate    *Date  `json:"start_date"`
	EndDate      *Date  `json:"end_date"`
	IsCurrent    bool   `json:"is_current"`
}

type ExperienceRequest struct {
	ExpType              string `json:"exp_type" validate:"omitempty,oneof=academic non_academic overall"`
	InstitutionOrCompany string `json:"institution_or_company" validate:"required"`
	Position             string `json:"position" validate:"required"`
	Responsibilities     string `json:"responsibilities"`
	StartDate            *Date  `json:"start_date"`
	EndDate              *Date  `json:"end_date"`
	IsCurrent            bool   `json:"is_current"`
}

type SkillRequest struct {
	Skill       string `json:"skill" validate:"required"`
	Proficiency string `json:"proficiency"`
}

type PresentationRequest struct {
	Title string `json:"title" validate:"required"`
	Date  *Date  `json:"date"`
	Venue string `json:"venue"`
}

type DocumentRequest struct {
	Name    string   `json:"name" validate:"required"`
	DocType string   `json:"doc_type"`
	Size    *float64 `json:"size"`
}
