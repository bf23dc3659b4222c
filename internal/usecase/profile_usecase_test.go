package usecase

import (
	"testing"

	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileUsecase(db *gorm.DB) *ProfileUsecase {
	return NewProfileUsecase(repository.NewUserRepository(db), repository.NewProfileRepository(db))
}

func TestFacultyProfileLazyCreate(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(db)
	u := createFaculty(t, db, "jane@example.edu")

	// first read creates the row
	resp, err := uc.GetFacultyProfile(u.ID)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, []string{}, resp.WorkPreference)

	var count int64
	require.NoError(t, db.Model(&model.FacultyProfile{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// repeat reads reuse it
	again, err := uc.GetFacultyProfile(u.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
}

func TestUpdateFacultyProfilePartial(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(db)
	u := createFaculty(t, db, "jane@example.edu")

	first := "Jane"
	_, err := uc.UpdateFacultyProfile(u.ID, dto.FacultyProfileUpdateRequest{FirstName: &first}, nil, false)
	require.NoError(t, err)

	city := "Springfield"
	resp, err := uc.UpdateFacultyProfile(u.ID, dto.FacultyProfileUpdateRequest{City: &city},
		[]string{"remote"}, true)
	require.NoError(t, err)

	// earlier fields survive a later partial update
	assert.Equal(t, "Jane", resp.FirstName)
	assert.Equal(t, "Springfield", resp.City)
	assert.Equal(t, []string{"remote"}, resp.WorkPreference)

	// absent work_preference key leaves the list alone
	resp, err = uc.UpdateFacultyProfile(u.ID, dto.FacultyProfileUpdateRequest{}, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"remote"}, resp.WorkPreference)

	// present empty list clears it
	resp, err = uc.UpdateFacultyProfile(u.ID, dto.FacultyProfileUpdateRequest{}, []string{}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{}, resp.WorkPreference)
}

func TestRecruiterProfileDefaults(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(db)
	hashless := model.User{Email: "rita@college.edu", IsRecruiter: true, IsActive: true}
	require.NoError(t, db.Create(&hashless).Error)

	resp, err := uc.GetRecruiterProfile(hashless.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown College", resp.College)

	college := "Springfield University"
	resp, err = uc.UpdateRecruiterProfile(hashless.ID, dto.RecruiterProfileUpdateRequest{College: &college})
	require.NoError(t, err)
	assert.Equal(t, "Springfield University", resp.College)
}

func TestSectionOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(db)
	owner := createFaculty(t, db, "owner@example.edu")
	other := createFaculty(t, db, "other@example.edu")

	edu := model.Education{Degree: "MSc", University: "Test U"}
	require.NoError(t, uc.CreateSection(owner.ID, &edu, func(pid uint) { edu.ProfileID = pid }))
	require.NotZero(t, edu.ID)

	var got model.Education
	require.NoError(t, uc.FindSection(owner.ID, &got, edu.ID))
	assert.Equal(t, "MSc", got.Degree)

	// foreign records read as missing
	assert.ErrorIs(t, uc.FindSection(other.ID, &got, edu.ID), ErrNotFound)
	assert.ErrorIs(t, uc.DeleteSection(other.ID, &model.Education{}, edu.ID), ErrNotFound)

	var list []model.Education
	require.NoError(t, uc.ListSection(other.ID, &list, "created_at DESC"))
	assert.Empty(t, list)

	require.NoError(t, uc.DeleteSection(owner.ID, &model.Education{}, edu.ID))
	assert.ErrorIs(t, uc.FindSection(owner.ID, &got, edu.ID), ErrNotFound)
}
