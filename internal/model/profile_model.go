package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is stored as a JSON array so the column stays portable across
// postgres and the sqlite test driver.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

type FacultyProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title          string     `gorm:"size:20" json:"title"`
	FirstName      string     `gorm:"size:50" json:"first_name"`
	LastName       string     `gorm:"size:50" json:"last_name"`
	Phone          string     `gorm:"size:30" json:"phone"`
	DOB            *time.Time `gorm:"type:date" json:"dob"`
	Gender         string     `gorm:"size:20" json:"gender"`
	State          string     `gorm:"size:100" json:"state"`
	City           string     `gorm:"size:100" json:"city"`
	Linkedin       string     `gorm:"size:255" json:"linkedin"`
	WorkPreference StringList `gorm:"type:text" json:"work_preference"`
	ProfilePhoto   string     `gorm:"size:255" json:"profile_photo"`
	Resume         string     `gorm:"size:255" json:"resume"`
	Transcripts    string     `gorm:"size:255" json:"transcripts"`

	Educations       []Education    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	TranscriptsList  []Transcript   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Certificates     []Certificate  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Memberships      []Membership   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Experiences      []Experience   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Skills           []Skill        `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Presentations    []Presentation `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	DocumentsOwned   []Document     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *FacultyProfile) TableName() string {
	return "faculty_profiles"
}

type RecruiterProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	FirstName string `gorm:"size:50" json:"first_name"`
	LastName  string `gorm:"size:50" json:"last_name"`
	College   string `gorm:"size:100;default:'Unknown College'" json:"college"`
}

func (p *RecruiterProfile) TableName() string {
	return "recruiter_profiles"
}
