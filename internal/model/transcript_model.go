package model

import "time"

const (
	DegreeLevelMasters   = "Master's"
	DegreeLevelDoctorate = "Doctorate"
)

type Transcript struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index;not null" json:"-"`

	DegreeLevel   string      `gorm:"size:20" json:"degree_level"`
	Degree        string      `gorm:"size:255" json:"degree"`
	College       string      `gorm:"size:255" json:"college"`
	Major         string      `gorm:"size:255" json:"major"`
	YearCompleted *int        `json:"year_completed"`
	DepartmentID  *uint       `json:"department"`
	Department    *Department `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	File          string      `gorm:"size:255" json:"file"`
	CreatedAt     time.Time   `json:"created_at"`

	Courses []Course `gorm:"foreignKey:TranscriptID;constraint:OnDelete:CASCADE" json:"courses"`
}

type Course struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TranscriptID uint `gorm:"index;not null" json:"-"`

	Code         string      `gorm:"size:50" json:"code"`
	Name         string      `gorm:"size:255" json:"name"`
	Credits      *float64    `json:"credits"`
	Grade        string      `gorm:"size:50" json:"grade"`
	DepartmentID *uint       `json:"department"`
	Department   *Department `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt    *time.Time  `json:"created_at"`
}
