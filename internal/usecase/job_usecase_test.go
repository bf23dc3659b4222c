package usecase

import (
	"testing"
	"time"

	"github.com/myjobsapp/myjobs-api/internal/auth"
	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testToday = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func newJobUsecase(t *testing.T, db *gorm.DB) *JobUsecase {
	t.Helper()
	uc := NewJobUsecase(repository.NewJobRepository(db), repository.NewProfileRepository(db))
	uc.now = func() time.Time { return testToday }
	return uc
}

func facultyInDepartment(t *testing.T, db *gorm.DB, email, deptName string) *model.User {
	t.Helper()
	u := createFaculty(t, db, email)
	p := model.FacultyProfile{UserID: u.ID}
	require.NoError(t, db.Create(&p).Error)

	var dept model.Department
	require.NoError(t, db.Where(model.Department{Name: deptName}).FirstOrCreate(&dept).Error)
	require.NoError(t, db.Create(&model.Transcript{
		ProfileID:    p.ID,
		DegreeLevel:  model.DegreeLevelMasters,
		Degree:       "MSc",
		College:      "Test College",
		DepartmentID: &dept.ID,
	}).Error)
	return u
}

func createJob(t *testing.T, db *gorm.DB, postedBy uint, dept, status string, deadline time.Time) *model.Job {
	t.Helper()
	j := model.Job{
		Title:      "Assistant Professor",
		Department: dept,
		Status:     status,
		Deadline:   &deadline,
		PostedByID: postedBy,
	}
	require.NoError(t, db.Create(&j).Error)
	return &j
}

func principalFor(u *model.User) auth.Principal {
	return auth.PrincipalFor(u)
}

func TestFacultyJobVisibility(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	recruiter := createRecruiter(t, db, "rita@college.edu")
	future := testToday.AddDate(0, 1, 0)
	past := testToday.AddDate(0, 0, -1)

	visible := createJob(t, db, recruiter.ID, "Computer Science", model.JobStatusOpen, future)
	createJob(t, db, recruiter.ID, "Computer Science", model.JobStatusPaused, future)
	createJob(t, db, recruiter.ID, "Computer Science", model.JobStatusOpen, past)
	createJob(t, db, recruiter.ID, "History", model.JobStatusOpen, future)

	t.Run("matching department sees open active jobs only", func(t *testing.T) {
		faculty := facultyInDepartment(t, db, "cs@example.edu", "Computer Science")
		jobs, err := uc.List(principalFor(faculty), "")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, visible.ID, jobs[0].ID)
		assert.True(t, jobs[0].IsActive)
	})

	t.Run("no transcripts means no visible jobs", func(t *testing.T) {
		faculty := createFaculty(t, db, "new@example.edu")
		jobs, err := uc.List(principalFor(faculty), "")
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("recruiter sees own jobs in every status", func(t *testing.T) {
		jobs, err := uc.List(principalFor(recruiter), "")
		require.NoError(t, err)
		assert.Len(t, jobs, 4)
	})

	t.Run("recruiter status filter", func(t *testing.T) {
		jobs, err := uc.List(principalFor(recruiter), model.JobStatusPaused)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, model.JobStatusPaused, jobs[0].Status)
	})
}

func TestJobOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	owner := createRecruiter(t, db, "owner@college.edu")
	other := createRecruiter(t, db, "other@college.edu")
	job := createJob(t, db, owner.ID, "Physics", model.JobStatusOpen, testToday.AddDate(0, 1, 0))

	// a foreign job ID reads as missing, not forbidden
	_, err := uc.Get(principalFor(other), job.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.Update(other.ID, job.ID, dto.JobUpdateRequest{}, "")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := uc.Get(principalFor(owner), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
}

func TestChangeStatusWritesHistory(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	recruiter := createRecruiter(t, db, "rita@college.edu")
	job := createJob(t, db, recruiter.ID, "Physics", model.JobStatusOpen, testToday.AddDate(0, 1, 0))

	resp, err := uc.ChangeStatus(recruiter.ID, job.ID, dto.JobStatusUpdateRequest{
		Status: model.JobStatusPaused,
		Notes:  "reviewing applicants",
	})
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusOpen, resp.OldStatus)
	assert.Equal(t, model.JobStatusPaused, resp.NewStatus)

	var updated model.Job
	require.NoError(t, db.First(&updated, job.ID).Error)
	assert.Equal(t, model.JobStatusPaused, updated.Status)

	var history []model.JobStatusHistory
	require.NoError(t, db.Where("job_id = ?", job.ID).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, model.JobStatusOpen, history[0].OldStatus)
	assert.Equal(t, model.JobStatusPaused, history[0].NewStatus)
	assert.Equal(t, recruiter.ID, history[0].ChangedByID)
	assert.Equal(t, "reviewing applicants", history[0].Notes)
}

func TestCreateJobDeadlineMustBeFuture(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	recruiter := createRecruiter(t, db, "rita@college.edu")

	req := dto.JobCreateRequest{
		Title:          "Lecturer",
		Description:    "Teach things",
		Location:       "Springfield",
		Course:         "Algorithms",
		Eligibility:    "PhD",
		SkillsRequired: "teaching",
		Deadline:       "2026-08-31",
	}
	_, err := uc.Create(recruiter.ID, req, "")
	var ferr *util.FormError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Errors, "deadline")

	req.Deadline = "2026-09-30"
	job, err := uc.Create(recruiter.ID, req, "")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusOpen, job.Status)
	assert.True(t, job.IsActive)
	require.NotNil(t, job.DaysUntilDeadline)
	assert.Equal(t, 30, *job.DaysUntilDeadline)
}

func TestSaveJob(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	recruiter := createRecruiter(t, db, "rita@college.edu")
	faculty := facultyInDepartment(t, db, "cs@example.edu", "Computer Science")
	job := createJob(t, db, recruiter.ID, "Computer Science", model.JobStatusOpen, testToday.AddDate(0, 1, 0))

	saved, err := uc.SaveJob(faculty.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, saved.Job.ID)

	// second save is rejected
	_, err = uc.SaveJob(faculty.ID, job.ID)
	var ferr *util.FormError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Errors, "job")

	isSaved, err := uc.IsSaved(faculty.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, isSaved)

	require.NoError(t, uc.UnsaveJob(faculty.ID, job.ID))
	assert.ErrorIs(t, uc.UnsaveJob(faculty.ID, job.ID), ErrNotFound)

	isSaved, err = uc.IsSaved(faculty.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, isSaved)
}

func TestApply(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	recruiter := createRecruiter(t, db, "rita@college.edu")
	faculty := facultyInDepartment(t, db, "cs@example.edu", "Computer Science")
	job := createJob(t, db, recruiter.ID, "Computer Science", model.JobStatusOpen, testToday.AddDate(0, 1, 0))

	app, err := uc.Apply(principalFor(faculty), job.ID, dto.JobApplicationRequest{CoverLetter: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationPending, app.Status)
	assert.Equal(t, job.ID, app.Job)

	_, err = uc.Apply(principalFor(faculty), job.ID, dto.JobApplicationRequest{})
	var ferr *util.FormError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Errors, "job")

	apps, err := uc.Applications(recruiter.ID, job.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, faculty.ID, apps[0].Applicant)
}

func TestJobStatistics(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	recruiter := createRecruiter(t, db, "rita@college.edu")
	future := testToday.AddDate(0, 1, 0)
	past := testToday.AddDate(0, 0, -3)

	createJob(t, db, recruiter.ID, "CS", model.JobStatusOpen, future)
	createJob(t, db, recruiter.ID, "CS", model.JobStatusOpen, past)
	createJob(t, db, recruiter.ID, "CS", model.JobStatusPaused, future)
	createJob(t, db, recruiter.ID, "CS", model.JobStatusClosed, past)

	stats, err := uc.Statistics(recruiter.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalJobs)
	assert.Equal(t, int64(2), stats.OpenJobs)
	assert.Equal(t, int64(1), stats.PausedJobs)
	assert.Equal(t, int64(1), stats.ClosedJobs)
	assert.Equal(t, int64(1), stats.ActiveJobs)
	// the closed job with a past deadline does not count as expired
	assert.Equal(t, int64(1), stats.ExpiredJobs)
}

func TestNoRoleJobVisibility(t *testing.T) {
	db := newTestDB(t)
	uc := newJobUsecase(t, db)
	recruiter := createRecruiter(t, db, "rita@college.edu")
	future := testToday.AddDate(0, 1, 0)
	past := testToday.AddDate(0, 0, -1)

	open := createJob(t, db, recruiter.ID, "Computer Science", model.JobStatusOpen, future)
	paused := createJob(t, db, recruiter.ID, "History", model.JobStatusPaused, future)
	createJob(t, db, recruiter.ID, "Physics", model.JobStatusOpen, past)

	plain := model.User{Email: "plain@example.edu", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&plain).Error)

	// no role flag set: open active jobs, unfiltered by department
	jobs, err := uc.List(principalFor(&plain), "")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, open.ID, jobs[0].ID)

	got, err := uc.Get(principalFor(&plain), open.ID)
	require.NoError(t, err)
	assert.Equal(t, open.ID, got.ID)

	_, err = uc.Get(principalFor(&plain), paused.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
