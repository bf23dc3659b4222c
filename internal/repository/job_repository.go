package repository

import (
	"time"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Save(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) Delete(job *model.Job) error {
	if err := r.db.Where("job_id = ?", job.ID).Delete(&model.JobStatusHistory{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("job_id = ?", job.ID).Delete(&model.JobApplication{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("job_id = ?", job.ID).Delete(&model.SavedJob{}).Error; err != nil {
		return err
	}
	return r.db.Delete(job).Error
}

func (r *JobRepository) FindByID(id uint) (*model.Job, error) {
	var j model.Job
	err := r.db.Preload("PostedBy").First(&j, "id = ?", id).Error
	return &j, err
}

// FindOwned scopes the lookup to the owner so probing another recruiter's job
// ID reads as not-found, never as forbidden.
func (r *JobRepository) FindOwned(id, userID uint) (*model.Job, error) {
	var j model.Job
	err := r.db.Preload("PostedBy").First(&j, "id = ? AND posted_by = ?", id, userID).Error
	return &j, err
}

func (r *JobRepository) ListByOwner(userID uint, status string) ([]model.Job, error) {
	var jobs []model.Job
	q := r.db.Preload("PostedBy").Where("posted_by = ?", userID).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}

// ListOpenActive returns open jobs with deadline >= today. A non-nil
// departments slice additionally restricts by department name; an empty
// non-nil slice therefore matches nothing.
func (r *JobRepository) ListOpenActive(today time.Time, departments []string) ([]model.Job, error) {
	var jobs []model.Job
	q := r.db.Preload("PostedBy").
		Where("status = ? AND deadline >= ?", model.JobStatusOpen, dateOnly(today)).
		Order("created_at DESC")
	if departments != nil {
		q = q.Where("department IN ?", departments)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}

// FacultyDepartmentNames derives the department set for job visibility from
// the faculty's transcripts and the courses nested inside them.
func (r *JobRepository) FacultyDepartmentNames(userID uint) ([]string, error) {
	var names []string
	err := r.db.Raw(`
        SELECT DISTINCT d.name
        FROM departments d
        WHERE d.id IN (
            SELECT t.department_id
            FROM transcripts t
            JOIN faculty_profiles p ON p.id = t.profile_id
            WHERE p.user_id = ? AND t.department_id IS NOT NULL
            UNION
            SELECT c.department_id
            FROM courses c
            JOIN transcripts t ON t.id = c.transcript_id
            JOIN faculty_profiles p ON p.id = t.profile_id
            WHERE p.user_id = ? AND c.department_id IS NOT NULL
        )
    `, userID, userID).Scan(&names).Error
	return names, err
}

// ChangeStatus updates the job status and appends the audit row in one
// transaction; neither survives without the other.
func (r *JobRepository) ChangeStatus(job *model.Job, newStatus string, changedBy uint, notes string) error {
	oldStatus := job.Status
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(job).Update("status", newStatus).Error; err != nil {
			return err
		}
		return tx.Create(&model.JobStatusHistory{
			JobID:       job.ID,
			OldStatus:   oldStatus,
			NewStatus:   newStatus,
			ChangedByID: changedBy,
			Notes:       notes,
		}).Error
	})
}

func (r *JobRepository) ListHistory(jobID uint) ([]model.JobStatusHistory, error) {
	var rows []model.JobStatusHistory
	err := r.db.Preload("ChangedBy").Where("job_id = ?", jobID).Order("changed_at DESC").Find(&rows).Error
	return rows, err
}

func (r *JobRepository) CountByOwner(userID uint, conds ...any) (int64, error) {
	var count int64
	q := r.db.Model(&model.Job{}).Where("posted_by = ?", userID)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *JobRepository) SavedExists(facultyID, jobID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.SavedJob{}).
		Where("faculty = ? AND job_id = ?", facultyID, jobID).Count(&count).Error
	return count > 0, err
}

func (r *JobRepository) CreateSaved(s *model.SavedJob) error {
	return r.db.Create(s).Error
}

func (r *JobRepository) ListSaved(facultyID uint) ([]model.SavedJob, error) {
	var saved []model.SavedJob
	err := r.db.Preload("Job").Preload("Job.PostedBy").
		Where("faculty = ?", facultyID).Order("saved_at DESC").Find(&saved).Error
	return saved, err
}

func (r *JobRepository) DeleteSaved(facultyID, jobID uint) error {
	res := r.db.Where("faculty = ? AND job_id = ?", facultyID, jobID).Delete(&model.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *JobRepository) ApplicationExists(jobID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.JobApplication{}).
		Where("job_id = ? AND applicant = ?", jobID, applicantID).Count(&count).Error
	return count > 0, err
}

func (r *JobRepository) CreateApplication(app *model.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *JobRepository) ListApplications(jobID uint) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.db.Preload("Job").Preload("Applicant").
		Where("job_id = ?", jobID).Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
