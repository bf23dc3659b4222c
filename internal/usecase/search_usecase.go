package usecase

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/response"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"gorm.io/gorm"
)

type SearchUsecase struct {
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
}

func NewSearchUsecase(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository) *SearchUsecase {
	return &SearchUsecase{userRepo: userRepo, profileRepo: profileRepo}
}

// SearchFaculty lists faculty holding at least one transcript, projected down
// to what the recruiter browse page renders.
func (uc *SearchUsecase) SearchFaculty(page, pageSize int) ([]dto.FacultySearchItem, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	profiles, total, err := uc.profileRepo.FacultyWithTranscripts((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, nil, err
	}

	items := make([]dto.FacultySearchItem, 0, len(profiles))
	for i := range profiles {
		items = append(items, uc.searchItem(&profiles[i]))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from := 0
	if len(items) > 0 {
		from = (page-1)*pageSize + 1
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         (page-1)*pageSize + len(items),
	}
	return items, pagination, nil
}

// FacultyDetail assembles the full recruiter-facing view of one faculty
// member. Non-faculty users and users without a profile read as not found.
func (uc *SearchUsecase) FacultyDetail(userID uint) (*dto.FacultyDetailResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.IsFaculty {
		return nil, ErrNotFound
	}

	p, err := uc.profileRepo.FacultyAggregate(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	transcripts := make([]dto.TranscriptBreakdown, 0, len(p.TranscriptsList))
	for i := range p.TranscriptsList {
		t := &p.TranscriptsList[i]
		courses, creditTotal := searchCourses(t)
		transcripts = append(transcripts, dto.TranscriptBreakdown{
			TranscriptID:   t.ID,
			DegreeLevel:    t.DegreeLevel,
			Degree:         t.Degree,
			College:        t.College,
			DepartmentName: deptName(t.Department),
			Courses:        courses,
			CreditTotal:    creditTotal,
		})
	}

	documents := make([]dto.DocumentItem, 0, len(p.DocumentsOwned))
	for _, d := range p.DocumentsOwned {
		documents = append(documents, dto.DocumentItem{
			ID:         d.ID,
			Name:       d.Name,
			DocType:    d.DocType,
			File:       util.FileURL(d.File),
			UploadedAt: d.UploadedAt.Format(time.RFC3339),
			Size:       d.Size,
		})
	}

	return &dto.FacultyDetailResponse{
		BasicInfo: dto.FacultyBasicInfo{
			UserID:       p.UserID,
			DisplayName:  displayName(p.FirstName, p.LastName, p.User.Email),
			Initials:     initials(p.FirstName, p.LastName, p.User.Email),
			Email:        p.User.Email,
			Title:        p.Title,
			Phone:        p.Phone,
			State:        p.State,
			City:         p.City,
			Linkedin:     p.Linkedin,
			ProfilePhoto: util.FileURL(p.ProfilePhoto),
			Departments:  departmentsOf(p),
		},
		Education:   p.Educations,
		Experience:  p.Experiences,
		Transcripts: transcripts,
		Documents:   documents,
	}, nil
}

func (uc *SearchUsecase) searchItem(p *model.FacultyProfile) dto.FacultySearchItem {
	var (
		courses     []dto.SearchCourse
		creditTotal float64
		degrees     []dto.DegreeBlock
	)
	for i := range p.TranscriptsList {
		t := &p.TranscriptsList[i]
		tCourses, tCredits := searchCourses(t)
		courses = append(courses, tCourses...)
		creditTotal += tCredits

		label := fmt.Sprintf("%s – %s", t.College, t.Degree)
		if t.Department != nil {
			label += " – " + t.Department.Name
		}
		degrees = append(degrees, dto.DegreeBlock{
			College:        t.College,
			Degree:         t.Degree,
			DegreeLevel:    t.DegreeLevel,
			DepartmentName: deptName(t.Department),
			Label:          label,
		})
	}
	if courses == nil {
		courses = []dto.SearchCourse{}
	}
	if degrees == nil {
		degrees = []dto.DegreeBlock{}
	}

	return dto.FacultySearchItem{
		UserID:            p.UserID,
		DisplayName:       displayName(p.FirstName, p.LastName, p.User.Email),
		Initials:          initials(p.FirstName, p.LastName, p.User.Email),
		Email:             p.User.Email,
		ProfilePhoto:      util.FileURL(p.ProfilePhoto),
		Departments:       departmentsOf(p),
		Degrees:           degrees,
		Courses:           courses,
		CourseCreditTotal: creditTotal,
	}
}

func searchCourses(t *model.Transcript) ([]dto.SearchCourse, float64) {
	courses := make([]dto.SearchCourse, 0, len(t.Courses))
	total := 0.0
	for _, c := range t.Courses {
		courses = append(courses, dto.SearchCourse{
			Name:           c.Name,
			Code:           c.Code,
			Credits:        c.Credits,
			DepartmentName: deptName(c.Department),
		})
		if c.Credits != nil {
			total += *c.Credits
		}
	}
	return courses, total
}

// departmentsOf collects distinct department names across the profile's
// transcripts and their courses, in first-seen order.
func departmentsOf(p *model.FacultyProfile) []string {
	out := []string{}
	add := func(d *model.Department) {
		if d != nil && !slices.Contains(out, d.Name) {
			out = append(out, d.Name)
		}
	}
	for i := range p.TranscriptsList {
		t := &p.TranscriptsList[i]
		add(t.Department)
		for j := range t.Courses {
			add(t.Courses[j].Department)
		}
	}
	return out
}

func deptName(d *model.Department) *string {
	if d == nil {
		return nil
	}
	return &d.Name
}

func displayName(first, last, email string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return email
	}
	return name
}

// initials are the first letters of the two name parts; accounts without a
// name fall back to the first two characters of the email.
func initials(first, last, email string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	out := ""
	if first != "" {
		out += string([]rune(first)[0])
	}
	if last != "" {
		out += string([]rune(last)[0])
	}
	if out == "" {
		r := []rune(email)
		if len(r) > 2 {
			r = r[:2]
		}
		out = string(r)
	}
	return strings.ToUpper(out)
}
