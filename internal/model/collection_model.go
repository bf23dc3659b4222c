package model

import "time"

// Repeatable CV sections owned by a FacultyProfile.

type Education struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	Degree            string    `gorm:"size:255" json:"degree"`
	Specialization    string    `gorm:"size:255" json:"specialization"`
	University        string    `gorm:"size:255" json:"university"`
	Program           string    `gorm:"size:255" json:"program"`
	Year              *int      `json:"year"`
	IsResearch        bool      `json:"is_research"`
	DissertationTitle string    `gorm:"size:512" json:"dissertation_title"`
	Abstract          string    `gorm:"type:text" json:"abstract"`
	CreatedAt         time.Time `json:"created_at"`
}

type Certificate struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	Name       string     `gorm:"size:255" json:"name"`
	Number     string     `gorm:"size:255" json:"number"`
	Provider   string     `gorm:"size:255" json:"provider"`
	IssueDate  *time.Time `gorm:"type:date" json:"issue_date"`
	ExpiryDate *time.Time `gorm:"type:date" json:"expiry_date"`
	File       string     `gorm:"size:255" json:"file"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Membership struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	Organization string     `gorm:"size:255" json:"organization"`
	MembershipID string     `gorm:"size:255" json:"membership_id"`
	StartDate    *time.Time `gorm:"type:date" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	CreatedAt    time.Time  `json:"created_at"`
}

const (
	ExperienceAcademic    = "academic"
	ExperienceNonAcademic = "non_academic"
	ExperienceOverall     = "overall"
)

type Experience struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	ExpType                string     `gorm:"size:20;default:'academic'" json:"exp_type"`
	InstitutionOrCompany   string     `gorm:"size:255" json:"institution_or_company"`
	Position               string     `gorm:"size:255" json:"position"`
	Responsibilities       string     `gorm:"type:text" json:"responsibilities"`
	StartDate              *time.Time `gorm:"type:date" json:"start_date"`
	EndDate                *time.Time `gorm:"type:date" json:"end_date"`
	IsCurrent              bool       `json:"is_current"`
	CreatedAt              time.Time  `json:"created_at"`
}

type Skill struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	Skill       string `gorm:"size:255" json:"skill"`
	Proficiency string `gorm:"size:50;default:'Beginner'" json:"proficiency"`
}

type Presentation struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	Title string     `gorm:"size:255" json:"title"`
	Date  *time.Time `gorm:"type:date" json:"date"`
	Venue string     `gorm:"size:255" json:"venue"`
}

type Document struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	Name       string    `gorm:"size:255" json:"name"`
	DocType    string    `gorm:"size:100" json:"doc_type"`
	File       string    `gorm:"size:255" json:"file"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	Size       *float64  `json:"size"` // MB
}
