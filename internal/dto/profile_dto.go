package dto

import (
	"strings"
	"time"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

// Date unmarshals the wire date format ("2006-01-02"); empty string and null
// land as the invalid zero value.
type Date struct {
	time.Time
	Valid bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Valid = false
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	d.Valid = true
	return nil
}

func (d Date) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

type UserBasic struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	IsFaculty   bool   `json:"is_faculty"`
	IsRecruiter bool   `json:"is_recruiter"`
}

func NewUserBasic(u *model.User) UserBasic {
	return UserBasic{ID: u.ID, Email: u.Email, IsFaculty: u.IsFaculty, IsRecruiter: u.IsRecruiter}
}

type FacultyProfileResponse struct {
	ID             uint      `json:"id"`
	User           UserBasic `json:"user"`
	Title          string    `json:"title"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	DOB            *string   `json:"dob"`
	Gender         string    `json:"gender"`
	State          string    `json:"state"`
	City           string    `json:"city"`
	Linkedin       string    `json:"linkedin"`
	WorkPreference []string  `json:"work_preference"`
	ProfilePhoto   *string   `json:"profile_photo"`
	Resume         *string   `json:"resume"`
	Transcripts    *string   `json:"transcripts"`
}

func NewFacultyProfileResponse(p *model.FacultyProfile, u *model.User) FacultyProfileResponse {
	var dob *string
	if p.DOB != nil {
		d := p.DOB.Format("2006-01-02")
		dob = &d
	}
	pref := []string(p.WorkPreference)
	if pref == nil {
		pref = []string{}
	}
	return FacultyProfileResponse{
		ID:             p.ID,
		User:           NewUserBasic(u),
		Title:          p.Title,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		DOB:            dob,
		Gender:         p.Gender,
		State:          p.State,
		City:           p.City,
		Linkedin:       p.Linkedin,
		WorkPreference: pref,
		ProfilePhoto:   util.FileURL(p.ProfilePhoto),
		Resume:         util.FileURL(p.Resume),
		Transcripts:    util.FileURL(p.Transcripts),
	}
}

type FacultyProfileUpdateRequest struct {
	Title     *string `json:"title"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	DOB       *Date   `json:"dob"`
	Gender    *string `json:"gender"`
	State     *string `json:"state"`
	City      *string `json:"city"`
	Linkedin  *string `json:"linkedin"`
	// work_preference handled from the raw body by the normalizer
}

type RecruiterProfileResponse struct {
	ID        uint      `json:"id"`
	User      UserBasic `json:"user"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	College   string    `json:"college"`
}

type RecruiterProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	College   *string `json:"college"`
}
