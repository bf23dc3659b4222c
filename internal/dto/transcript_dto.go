package dto

import (
	"time"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

type CourseResponse struct {
	ID             uint     `json:"id"`
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Credits        *float64 `json:"credits"`
	Grade          string   `json:"grade"`
	Department     *uint    `json:"department"`
	DepartmentName *string  `json:"department_name"`
	CreatedAt      *string  `json:"created_at"`
}

func NewCourseResponse(c *model.Course) CourseResponse {
	var created *string
	if c.CreatedAt != nil {
		s := c.CreatedAt.Format(time.RFC3339)
		created = &s
	}
	return CourseResponse{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Credits:        c.Credits,
		Grade:          c.Grade,
		Department:     c.DepartmentID,
		DepartmentName: departmentName(c.Department),
		CreatedAt:      created,
	}
}

type TranscriptResponse struct {
	ID             uint             `json:"id"`
	DegreeLevel    string           `json:"degree_level"`
	Degree         string           `json:"degree"`
	College        string           `json:"college"`
	Major          string           `json:"major"`
	Department     *uint            `json:"department"`
	DepartmentName *string          `json:"department_name"`
	YearCompleted  *int             `json:"year_completed"`
	File           *string          `json:"file"`
	Courses        []CourseResponse `json:"courses"`
	CreatedAt      string           `json:"created_at"`
}

func NewTranscriptResponse(t *model.Transcript) TranscriptResponse {
	courses := make([]CourseResponse, 0, len(t.Courses))
	for i := range t.Courses {
		courses = append(courses, NewCourseResponse(&t.Courses[i]))
	}
	return TranscriptResponse{
		ID:             t.ID,
		DegreeLevel:    t.DegreeLevel,
		Degree:         t.Degree,
		College:        t.College,
		Major:          t.Major,
		Department:     t.DepartmentID,
		DepartmentName: departmentName(t.Department),
		YearCompleted:  t.YearCompleted,
		File:           util.FileURL(t.File),
		Courses:        courses,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
}

func departmentName(d *model.Department) *string {
	if d == nil {
		return nil
	}
	return &d.Name
}
