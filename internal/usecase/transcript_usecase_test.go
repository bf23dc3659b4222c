package usecase

import (
	"fmt"
	"testing"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTranscriptUsecase(db *gorm.DB) *TranscriptUsecase {
	return NewTranscriptUsecase(
		repository.NewProfileRepository(db),
		repository.NewTranscriptRepository(db),
		repository.NewLookupRepository(db),
	)
}

func TestCreateTranscriptNormalizesAliases(t *testing.T) {
	db := newTestDB(t)
	uc := newTranscriptUsecase(db)
	faculty := createFaculty(t, db, "jane@example.edu")

	dept := model.Department{Name: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)

	// camelCase keys, a PhD alias, a department by name, and both credit
	// alias keys on one course
	body := []byte(fmt.Sprintf(`{
		"degreeLevel": "PhD",
		"degree": "PhD in CS",
		"college": "Test College",
		"yearCompleted": "2019",
		"department": "Computer Science",
		"courses": [
			{"name": "Algorithms", "code": "CS501", "creditHours": 3, "credit_hours": 4},
			{"name": "Databases", "credits": "2.5", "department": %d}
		]
	}`, dept.ID))

	resp, err := uc.Create(faculty.ID, body, "")
	require.NoError(t, err)

	assert.Equal(t, model.DegreeLevelDoctorate, resp.DegreeLevel)
	require.NotNil(t, resp.YearCompleted)
	assert.Equal(t, 2019, *resp.YearCompleted)
	require.NotNil(t, resp.Department)
	assert.Equal(t, dept.ID, *resp.Department)

	require.Len(t, resp.Courses, 2)
	require.NotNil(t, resp.Courses[0].Credits)
	assert.Equal(t, 3.0, *resp.Courses[0].Credits)
	require.NotNil(t, resp.Courses[1].Credits)
	assert.Equal(t, 2.5, *resp.Courses[1].Credits)
	require.NotNil(t, resp.Courses[1].DepartmentName)
	assert.Equal(t, "Computer Science", *resp.Courses[1].DepartmentName)
}

func TestCreateTranscriptValidation(t *testing.T) {
	db := newTestDB(t)
	uc := newTranscriptUsecase(db)
	faculty := createFaculty(t, db, "jane@example.edu")

	t.Run("degree level required", func(t *testing.T) {
		_, err := uc.Create(faculty.ID, []byte(`{"degree": "MSc"}`), "")
		var ferr *util.FormError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "Please select a degree level (Master's or Doctorate)", ferr.Errors["degree_level"])
	})

	t.Run("degree level must be canonical", func(t *testing.T) {
		_, err := uc.Create(faculty.ID, []byte(`{"degree_level": "Bachelors"}`), "")
		var ferr *util.FormError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "Degree level must be either Master's or Doctorate", ferr.Errors["degree_level"])
	})

	t.Run("invalid course credits keyed by index", func(t *testing.T) {
		body := []byte(`{
			"degree_level": "Masters",
			"courses": [
				{"name": "Algorithms", "credits": 3},
				{"name": "Databases", "credits": "abc"}
			]
		}`)
		_, err := uc.Create(faculty.ID, body, "")
		var ferr *util.FormError
		require.ErrorAs(t, err, &ferr)
		assert.Contains(t, ferr.Errors, "courses[1].credits")
		assert.NotContains(t, ferr.Errors, "courses[0].credits")
	})

	t.Run("year out of range", func(t *testing.T) {
		_, err := uc.Create(faculty.ID, []byte(`{"degree_level": "Masters", "year_completed": 1850}`), "")
		var ferr *util.FormError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "Year must be between 1900 and 2100", ferr.Errors["year_completed"])
	})

	// a failed validation must leave nothing behind
	transcripts, err := uc.List(faculty.ID)
	require.NoError(t, err)
	assert.Empty(t, transcripts)
}

func TestUpdateTranscriptReplacesCourses(t *testing.T) {
	db := newTestDB(t)
	uc := newTranscriptUsecase(db)
	faculty := createFaculty(t, db, "jane@example.edu")

	created, err := uc.Create(faculty.ID, []byte(`{
		"degree_level": "Masters",
		"degree": "MSc",
		"courses": [
			{"name": "Algorithms", "credits": 3},
			{"name": "Databases", "credits": 2}
		]
	}`), "")
	require.NoError(t, err)
	require.Len(t, created.Courses, 2)

	replacement := []byte(`{"courses": [{"name": "Compilers", "credits": 4}]}`)
	updated, err := uc.Update(faculty.ID, created.ID, replacement, "")
	require.NoError(t, err)
	require.Len(t, updated.Courses, 1)
	assert.Equal(t, "Compilers", updated.Courses[0].Name)
	assert.Equal(t, model.DegreeLevelMasters, updated.DegreeLevel)

	// replaying the same payload is idempotent
	updated, err = uc.Update(faculty.ID, created.ID, replacement, "")
	require.NoError(t, err)
	require.Len(t, updated.Courses, 1)

	var count int64
	require.NoError(t, db.Model(&model.Course{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateTranscriptWithoutCoursesLeavesThem(t *testing.T) {
	db := newTestDB(t)
	uc := newTranscriptUsecase(db)
	faculty := createFaculty(t, db, "jane@example.edu")

	created, err := uc.Create(faculty.ID, []byte(`{
		"degree_level": "Masters",
		"courses": [{"name": "Algorithms", "credits": 3}]
	}`), "")
	require.NoError(t, err)

	updated, err := uc.Update(faculty.ID, created.ID, []byte(`{"major": "CS"}`), "")
	require.NoError(t, err)
	assert.Equal(t, "CS", updated.Major)
	assert.Len(t, updated.Courses, 1)
}

func TestTranscriptOwnership(t *testing.T) {
	db := newTestDB(t)
	uc := newTranscriptUsecase(db)
	owner := createFaculty(t, db, "owner@example.edu")
	other := createFaculty(t, db, "other@example.edu")

	created, err := uc.Create(owner.ID, []byte(`{"degree_level": "Doctoral"}`), "")
	require.NoError(t, err)
	assert.Equal(t, model.DegreeLevelDoctorate, created.DegreeLevel)

	_, err = uc.Get(other.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, uc.Delete(other.ID, created.ID), ErrNotFound)

	require.NoError(t, uc.Delete(owner.ID, created.ID))
	_, err = uc.Get(owner.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnresolvableDepartmentBecomesNull(t *testing.T) {
	db := newTestDB(t)
	uc := newTranscriptUsecase(db)
	faculty := createFaculty(t, db, "jane@example.edu")

	resp, err := uc.Create(faculty.ID, []byte(`{
		"degree_level": "Masters",
		"department": "No Such Department"
	}`), "")
	require.NoError(t, err)
	assert.Nil(t, resp.Department)
	assert.Nil(t, resp.DepartmentName)
}
