package usecase

import (
	"testing"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchUsecase(db *gorm.DB) *SearchUsecase {
	return NewSearchUsecase(repository.NewUserRepository(db), repository.NewProfileRepository(db))
}

func seedFacultyAggregate(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	u := createFaculty(t, db, "jane@example.edu")
	p := model.FacultyProfile{UserID: u.ID, FirstName: "Jane", LastName: "Doe"}
	require.NoError(t, db.Create(&p).Error)

	cs := model.Department{Name: "Computer Science"}
	require.NoError(t, db.Create(&cs).Error)

	credits := func(f float64) *float64 { return &f }
	t1 := model.Transcript{
		ProfileID:    p.ID,
		DegreeLevel:  model.DegreeLevelMasters,
		Degree:       "MSc",
		College:      "Test College",
		DepartmentID: &cs.ID,
		Courses: []model.Course{
			{Name: "Algorithms", Credits: credits(2)},
			{Name: "Databases", Credits: credits(3)},
		},
	}
	t2 := model.Transcript{
		ProfileID:   p.ID,
		DegreeLevel: model.DegreeLevelDoctorate,
		Degree:      "PhD",
		College:     "Test College",
		Courses: []model.Course{
			{Name: "Compilers", Credits: credits(1)},
			{Name: "Networks", Credits: credits(4)},
		},
	}
	require.NoError(t, db.Create(&t1).Error)
	require.NoError(t, db.Create(&t2).Error)
	return u
}

func TestSearchFacultyProjection(t *testing.T) {
	db := newTestDB(t)
	uc := newSearchUsecase(db)
	u := seedFacultyAggregate(t, db)

	// faculty without transcripts stay out of the listing
	noTranscripts := createFaculty(t, db, "empty@example.edu")
	require.NoError(t, db.Create(&model.FacultyProfile{UserID: noTranscripts.ID}).Error)

	items, pagination, err := uc.SearchFaculty(1, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), pagination.TotalItems)

	item := items[0]
	assert.Equal(t, u.ID, item.UserID)
	assert.Equal(t, "Jane Doe", item.DisplayName)
	assert.Equal(t, "JD", item.Initials)
	assert.Len(t, item.Courses, 4)
	assert.Equal(t, 10.0, item.CourseCreditTotal)
	assert.Equal(t, []string{"Computer Science"}, item.Departments)
	require.Len(t, item.Degrees, 2)
}

func TestSearchFacultyInitialsFallBackToEmail(t *testing.T) {
	db := newTestDB(t)
	uc := newSearchUsecase(db)
	u := createFaculty(t, db, "anon@example.edu")
	p := model.FacultyProfile{UserID: u.ID}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&model.Transcript{
		ProfileID:   p.ID,
		DegreeLevel: model.DegreeLevelMasters,
	}).Error)

	items, _, err := uc.SearchFaculty(1, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "anon@example.edu", items[0].DisplayName)
	assert.Equal(t, "AN", items[0].Initials)
}

func TestFacultyDetail(t *testing.T) {
	db := newTestDB(t)
	uc := newSearchUsecase(db)
	u := seedFacultyAggregate(t, db)

	detail, err := uc.FacultyDetail(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", detail.BasicInfo.DisplayName)
	require.Len(t, detail.Transcripts, 2)

	totals := []float64{detail.Transcripts[0].CreditTotal, detail.Transcripts[1].CreditTotal}
	assert.ElementsMatch(t, []float64{5, 5}, totals)
}

func TestFacultyDetailNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newSearchUsecase(db)

	_, err := uc.FacultyDetail(999)
	assert.ErrorIs(t, err, ErrNotFound)

	// recruiters are not inspectable through the faculty detail view
	recruiter := createRecruiter(t, db, "rita@college.edu")
	_, err = uc.FacultyDetail(recruiter.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// a faculty user without a profile reads as missing too
	bare := createFaculty(t, db, "bare@example.edu")
	_, err = uc.FacultyDetail(bare.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
