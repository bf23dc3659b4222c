package model

import "time"

const (
	JobStatusOpen   = "open"
	JobStatusPaused = "paused"
	JobStatusClosed = "closed"
)

const (
	JobTypeOnsite   = "onsite"
	JobTypeRemote   = "remote"
	JobTypeFullTime = "full_time"
	JobTypePartTime = "part_time"
)

type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title           string `gorm:"size:255;not null" json:"title"`
	Department      string `gorm:"size:255" json:"department"`
	JobType         string `gorm:"size:20" json:"job_type"`
	Description     string `gorm:"type:text" json:"description"`
	Location        string `gorm:"size:255" json:"location"`
	ExperienceYears int    `gorm:"default:0" json:"experience_years"`

	Course         string `gorm:"size:255" json:"course"`
	Eligibility    string `gorm:"type:text" json:"eligibility"`
	SkillsRequired string `gorm:"type:text" json:"skills_required"`

	Deadline    *time.Time `gorm:"type:date" json:"deadline"`
	Status      string     `gorm:"size:20;default:'open'" json:"status"`
	PDFDocument string     `gorm:"size:255" json:"pdf_document"`

	PostedByID uint `gorm:"index;not null;column:posted_by" json:"posted_by"`
	PostedBy   User `gorm:"foreignKey:PostedByID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// IsActive reports whether the job still accepts applications on the given day.
func (j *Job) IsActive(today time.Time) bool {
	if j.Status != JobStatusOpen || j.Deadline == nil {
		return false
	}
	return !dateOf(*j.Deadline).Before(dateOf(today))
}

// DaysUntilDeadline is floored at zero for display; a past deadline still
// reads as 0 even though IsActive already treats the job as inactive.
func (j *Job) DaysUntilDeadline(today time.Time) *int {
	if j.Deadline == nil {
		return nil
	}
	days := int(dateOf(*j.Deadline).Sub(dateOf(today)).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const (
	ApplicationPending     = "pending"
	ApplicationReviewing   = "reviewing"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationHired       = "hired"
)

type JobApplication struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	JobID       uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job"`
	Job         Job  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ApplicantID uint `gorm:"not null;uniqueIndex:idx_job_applicant;column:applicant" json:"applicant"`
	Applicant   User `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`

	Status      string `gorm:"size:20;default:'pending'" json:"status"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	Resume      string `gorm:"size:255" json:"resume"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobStatusHistory is the append-only audit trail of status transitions.
// Rows are never updated or deleted outside of job cascade deletion.
type JobStatusHistory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	JobID       uint   `gorm:"index;not null" json:"job"`
	Job         Job    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OldStatus   string `gorm:"size:20" json:"old_status"`
	NewStatus   string `gorm:"size:20;not null" json:"new_status"`
	ChangedByID uint   `gorm:"not null;column:changed_by" json:"changed_by"`
	ChangedBy   User   `gorm:"foreignKey:ChangedByID;constraint:OnDelete:CASCADE" json:"-"`

	ChangedAt time.Time `gorm:"autoCreateTime" json:"changed_at"`
	Notes     string    `gorm:"type:text" json:"notes"`
}

type SavedJob struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	FacultyID uint `gorm:"not null;uniqueIndex:idx_faculty_job;column:faculty" json:"faculty"`
	Faculty   User `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"-"`
	JobID     uint `gorm:"not null;uniqueIndex:idx_faculty_job" json:"job"`
	Job       Job  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	SavedAt time.Time `gorm:"autoCreateTime" json:"saved_at"`
}
