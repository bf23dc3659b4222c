package usecase

import (
	"errors"
	"fmt"

	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/normalize"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

const (
	msgDegreeLevelRequired = "Please select a degree level (Master's or Doctorate)"
	msgDegreeLevelInvalid  = "Degree level must be either Master's or Doctorate"
	msgYearOutOfRange      = "Year must be between 1900 and 2100"
)

type TranscriptUsecase struct {
	profileRepo    *repository.ProfileRepository
	transcriptRepo *repository.TranscriptRepository
	lookupRepo     *repository.LookupRepository
}

func NewTranscriptUsecase(profileRepo *repository.ProfileRepository, transcriptRepo *repository.TranscriptRepository, lookupRepo *repository.LookupRepository) *TranscriptUsecase {
	return &TranscriptUsecase{profileRepo: profileRepo, transcriptRepo: transcriptRepo, lookupRepo: lookupRepo}
}

func (uc *TranscriptUsecase) List(userID uint) ([]dto.TranscriptResponse, error) {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return nil, err
	}
	transcripts, err := uc.transcriptRepo.ListByProfile(p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TranscriptResponse, 0, len(transcripts))
	for i := range transcripts {
		out = append(out, dto.NewTranscriptResponse(&transcripts[i]))
	}
	return out, nil
}

func (uc *TranscriptUsecase) Get(userID, id uint) (*dto.TranscriptResponse, error) {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return nil, err
	}
	t, err := uc.transcriptRepo.FindByID(id, p.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewTranscriptResponse(t)
	return &resp, nil
}

// Create accepts the raw request body so the tolerant field shapes (camelCase
// keys, credit aliases, department by id/object/name) all pass through the
// normalizers before anything touches the database.
func (uc *TranscriptUsecase) Create(userID uint, body []byte, filePath string) (*dto.TranscriptResponse, error) {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return nil, err
	}

	obj := gjson.ParseBytes(normalize.SnakeBody(body))
	fields := map[string]string{}

	t := model.Transcript{ProfileID: p.ID, File: filePath}
	uc.applyDegreeLevel(&t, obj, false, fields)
	uc.applyScalars(&t, obj, fields)
	courses := uc.parseCourses(obj.Get("courses"), fields)

	if len(fields) > 0 {
		return nil, util.NewFormError("validation failed", fields)
	}
	if err := uc.transcriptRepo.CreateWithCourses(&t, courses); err != nil {
		return nil, err
	}
	return uc.Get(userID, t.ID)
}

// Update applies only the keys present in the body. A present courses key
// replaces the full course list.
func (uc *TranscriptUsecase) Update(userID, id uint, body []byte, filePath string) (*dto.TranscriptResponse, error) {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return nil, err
	}
	t, err := uc.transcriptRepo.FindByID(id, p.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	obj := gjson.ParseBytes(normalize.SnakeBody(body))
	fields := map[string]string{}

	uc.applyDegreeLevel(t, obj, true, fields)
	uc.applyScalars(t, obj, fields)

	coursesVal := obj.Get("courses")
	courses := uc.parseCourses(coursesVal, fields)
	if filePath != "" {
		t.File = filePath
	}

	if len(fields) > 0 {
		return nil, util.NewFormError("validation failed", fields)
	}
	if err := uc.transcriptRepo.UpdateWithCourses(t, courses, coursesVal.Exists()); err != nil {
		return nil, err
	}
	return uc.Get(userID, id)
}

func (uc *TranscriptUsecase) Delete(userID, id uint) error {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return err
	}
	err = uc.transcriptRepo.Delete(id, p.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (uc *TranscriptUsecase) applyDegreeLevel(t *model.Transcript, obj gjson.Result, partial bool, fields map[string]string) {
	v := obj.Get("degree_level")
	if !v.Exists() {
		if !partial && t.DegreeLevel == "" {
			fields["degree_level"] = msgDegreeLevelRequired
		}
		return
	}
	level := normalize.DegreeLevel(v.String())
	switch level {
	case "":
		fields["degree_level"] = msgDegreeLevelRequired
	case model.DegreeLevelMasters, model.DegreeLevelDoctorate:
		t.DegreeLevel = level
	default:
		fields["degree_level"] = msgDegreeLevelInvalid
	}
}

func (uc *TranscriptUsecase) applyScalars(t *model.Transcript, obj gjson.Result, fields map[string]string) {
	if v := obj.Get("degree"); v.Exists() {
		t.Degree = v.String()
	}
	if v := obj.Get("college"); v.Exists() {
		t.College = v.String()
	}
	if v := obj.Get("major"); v.Exists() {
		t.Major = v.String()
	}
	if v := obj.Get("year_completed"); v.Exists() {
		year, err := normalize.Year(v)
		switch {
		case err != nil:
			fields["year_completed"] = "Must be a valid year"
		case year != nil && (*year < 1900 || *year > 2100):
			fields["year_completed"] = msgYearOutOfRange
		default:
			t.YearCompleted = year
		}
	}
	if v := obj.Get("department"); v.Exists() {
		deptID, err := uc.resolveDepartment(v)
		if err != nil {
			fields["department"] = "Could not resolve department"
		} else {
			t.DepartmentID = deptID
		}
	}
}

func (uc *TranscriptUsecase) parseCourses(v gjson.Result, fields map[string]string) []model.Course {
	if !v.Exists() || !v.IsArray() {
		return nil
	}
	var courses []model.Course
	i := 0
	v.ForEach(func(_, raw gjson.Result) bool {
		c := model.Course{
			Code:  normalize.Field(raw, "code", "course_code", "courseCode").String(),
			Name:  normalize.Field(raw, "name", "course_name", "courseName").String(),
			Grade: normalize.Field(raw, "grade").String(),
		}
		if c.Name == "" {
			fields[fmt.Sprintf("courses[%d].name", i)] = "This field is required"
		}
		credits, err := normalize.Credits(raw)
		if err != nil {
			fields[fmt.Sprintf("courses[%d].credits", i)] = "Must be a valid number"
		} else {
			c.Credits = credits
		}
		if dv := raw.Get("department"); dv.Exists() {
			deptID, err := uc.resolveDepartment(dv)
			if err != nil {
				fields[fmt.Sprintf("courses[%d].department", i)] = "Could not resolve department"
			} else {
				c.DepartmentID = deptID
			}
		}
		courses = append(courses, c)
		i++
		return true
	})
	return courses
}

// resolveDepartment turns whatever the client sent into a department ID. An
// ID or name that matches nothing resolves to null rather than an error.
func (uc *TranscriptUsecase) resolveDepartment(v gjson.Result) (*uint, error) {
	ref := normalize.DepartmentField(v)
	if ref.IsNull() {
		return nil, nil
	}
	if ref.ID != nil {
		d, err := uc.lookupRepo.FindDepartmentByID(*ref.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &d.ID, nil
	}
	d, err := uc.lookupRepo.FindDepartmentByName(ref.Name)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return &d.ID, nil
}
