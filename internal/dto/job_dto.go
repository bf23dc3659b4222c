package dto

import (
	"time"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

type JobCreateRequest struct {
	Title           string `json:"title" validate:"required"`
	Department      string `json:"department"`
	JobType         string `json:"job_type" validate:"omitempty,oneof=onsite remote full_time part_time"`
	Description     string `json:"description" validate:"required"`
	Location        string `json:"location" validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
	Course          string `json:"course" validate:"required"`
	Eligibility     string `json:"eligibility" validate:"required"`
	SkillsRequired  string `json:"skills_required" validate:"required"`
	Deadline        string `json:"deadline" validate:"required"`
}

type JobUpdateRequest struct {
	Title           *string `json:"title"`
	Department      *string `json:"department"`
	JobType         *string `json:"job_type" validate:"omitempty,oneof=onsite remote full_time part_time"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,gte=0"`
	Course          *string `json:"course"`
	Eligibility     *string `json:"eligibility"`
	SkillsRequired  *string `json:"skills_required"`
	Deadline        *string `json:"deadline"`
	Status          *string `json:"status" validate:"omitempty,oneof=open paused closed"`
}

type JobStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=open paused closed"`
	Notes  string `json:"notes"`
}

type JobResponse struct {
	ID                uint    `json:"id"`
	Title             string  `json:"title"`
	Department        string  `json:"department"`
	JobType           string  `json:"job_type"`
	Description       string  `json:"description"`
	Location          string  `json:"location"`
	ExperienceYears   int     `json:"experience_years"`
	Course            string  `json:"course"`
	Eligibility       string  `json:"eligibility"`
	SkillsRequired    string  `json:"skills_required"`
	Deadline          *string `json:"deadline"`
	Status            string  `json:"status"`
	PDFDocument       *string `json:"pdf_document"`
	PostedBy          uint    `json:"posted_by"`
	PostedByName      string  `json:"posted_by_name"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
	IsActive          bool    `json:"is_active"`
	DaysUntilDeadline *int    `json:"days_until_deadline"`
}

func NewJobResponse(j *model.Job, postedByName string, today time.Time) JobResponse {
	var deadline *string
	if j.Deadline != nil {
		d := j.Deadline.Format("2006-01-02")
		deadline = &d
	}
	return JobResponse{
		ID:                j.ID,
		Title:             j.Title,
		Department:        j.Department,
		JobType:           j.JobType,
		Description:       j.Description,
		Location:          j.Location,
		ExperienceYears:   j.ExperienceYears,
		Course:            j.Course,
		Eligibility:       j.Eligibility,
		SkillsRequired:    j.SkillsRequired,
		Deadline:          deadline,
		Status:            j.Status,
		PDFDocument:       util.FileURL(j.PDFDocument),
		PostedBy:          j.PostedByID,
		PostedByName:      postedByName,
		CreatedAt:         j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         j.UpdatedAt.Format(time.RFC3339),
		IsActive:          j.IsActive(today),
		DaysUntilDeadline: j.DaysUntilDeadline(today),
	}
}

type JobStatusChangeResponse struct {
	Message   string `json:"message"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

type JobStatisticsResponse struct {
	TotalJobs   int64 `json:"total_jobs"`
	OpenJobs    int64 `json:"open_jobs"`
	PausedJobs  int64 `json:"paused_jobs"`
	ClosedJobs  int64 `json:"closed_jobs"`
	ActiveJobs  int64 `json:"active_jobs"`
	ExpiredJobs int64 `json:"expired_jobs"`
}

type SavedJobRequest struct {
	JobID uint `json:"job_id" validate:"required"`
}

type SavedJobResponse struct {
	ID      uint        `json:"id"`
	Job     JobResponse `json:"job"`
	SavedAt string      `json:"saved_at"`
}

type JobApplicationRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type JobApplicationResponse struct {
	ID            uint    `json:"id"`
	Job           uint    `json:"job"`
	JobTitle      string  `json:"job_title"`
	Applicant     uint    `json:"applicant"`
	ApplicantName string  `json:"applicant_name"`
	Status        string  `json:"status"`
	CoverLetter   string  `json:"cover_letter"`
	Resume        *string `json:"resume"`
	AppliedAt     string  `json:"applied_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type JobStatusHistoryResponse struct {
	ID            uint   `json:"id"`
	Job           uint   `json:"job"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
	ChangedBy     uint   `json:"changed_by"`
	ChangedByName string `json:"changed_by_name"`
	ChangedAt     string `json:"changed_at"`
	Notes         string `json:"notes"`
}
