package dto

import "github.com/myjobsapp/myjobs-api/internal/model"

// Read-only projections over the faculty profile aggregate, computed per
// request for recruiter consumption.

type SearchCourse struct {
	Name           string   `json:"name"`
	Code           string   `json:"code"`
	Credits        *float64 `json:"credits"`
	DepartmentName *string  `json:"department_name"`
}

type DegreeBlock struct {
	College        string  `json:"college"`
	Degree         string  `json:"degree"`
	DegreeLevel    string  `json:"degree_level"`
	DepartmentName *string `json:"department_name"`
	Label          string  `json:"label"`
}

type FacultySearchItem struct {
	UserID            uint           `json:"user_id"`
	DisplayName       string         `json:"display_name"`
	Initials          string         `json:"initials"`
	Email             string         `json:"email"`
	ProfilePhoto      *string        `json:"profile_photo"`
	Departments       []string       `json:"departments"`
	Degrees           []DegreeBlock  `json:"degrees"`
	Courses           []SearchCourse `json:"courses"`
	CourseCreditTotal float64        `json:"course_credit_total"`
}

type FacultyBasicInfo struct {
	UserID       uint     `json:"user_id"`
	DisplayName  string   `json:"display_name"`
	Initials     string   `json:"initials"`
	Email        string   `json:"email"`
	Title        string   `json:"title"`
	Phone        string   `json:"phone"`
	State        string   `json:"state"`
	City         string   `json:"city"`
	Linkedin     string   `json:"linkedin"`
	ProfilePhoto *string  `json:"profile_photo"`
	Departments  []string `json:"departments"`
}

type TranscriptBreakdown struct {
	TranscriptID   uint           `json:"transcript_id"`
	DegreeLevel    string         `json:"degree_level"`
	Degree         string         `json:"degree"`
	College        string         `json:"college"`
	DepartmentName *string        `json:"department_name"`
	Courses        []SearchCourse `json:"courses"`
	CreditTotal    float64        `json:"credit_total"`
}

type DocumentItem struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	DocType    string   `json:"doc_type"`
	File       *string  `json:"file"`
	UploadedAt string   `json:"uploaded_at"`
	Size       *float64 `json:"size"`
}

type FacultyDetailResponse struct {
	BasicInfo   FacultyBasicInfo      `json:"basic_info"`
	Education   []model.Education     `json:"education"`
	Experience  []model.Experience    `json:"experience"`
	Transcripts []TranscriptBreakdown `json:"transcripts"`
	Documents   []DocumentItem        `json:"documents"`
}
