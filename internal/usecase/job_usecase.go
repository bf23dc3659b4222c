package usecase

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/myjobsapp/myjobs-api/internal/auth"
	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"gorm.io/gorm"
)

type JobUsecase struct {
	jobRepo     *repository.JobRepository
	profileRepo *repository.ProfileRepository
	now         func() time.Time
}

func NewJobUsecase(jobRepo *repository.JobRepository, profileRepo *repository.ProfileRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, profileRepo: profileRepo, now: time.Now}
}

// List applies role-scoped visibility. Recruiters see their own jobs in every
// status; faculty see open jobs with a future or same-day deadline, limited to
// the departments derived from their transcripts and courses. Any other
// authenticated caller sees open, non-expired jobs across all departments.
func (uc *JobUsecase) List(principal auth.Principal, statusFilter string) ([]dto.JobResponse, error) {
	var (
		jobs []model.Job
		err  error
	)
	switch principal.Role {
	case auth.RoleRecruiter:
		jobs, err = uc.jobRepo.ListByOwner(principal.UserID, statusFilter)
	case auth.RoleFaculty:
		var departments []string
		departments, err = uc.jobRepo.FacultyDepartmentNames(principal.UserID)
		if err != nil {
			return nil, err
		}
		if departments == nil {
			departments = []string{}
		}
		jobs, err = uc.jobRepo.ListOpenActive(uc.now(), departments)
	default:
		jobs, err = uc.jobRepo.ListOpenActive(uc.now(), nil)
	}
	if err != nil {
		return nil, err
	}
	return uc.jobResponses(jobs)
}

func (uc *JobUsecase) Get(principal auth.Principal, id uint) (*dto.JobResponse, error) {
	job, err := uc.visibleJob(principal, id)
	if err != nil {
		return nil, err
	}
	resp := uc.jobResponse(job)
	return &resp, nil
}

func (uc *JobUsecase) Create(userID uint, req dto.JobCreateRequest, pdfPath string) (*dto.JobResponse, error) {
	if ferr := util.ValidateStruct(req); ferr != nil {
		return nil, ferr
	}
	deadline, ferr := uc.parseDeadline(req.Deadline)
	if ferr != nil {
		return nil, ferr
	}

	job := model.Job{
		Title:           req.Title,
		Department:      req.Department,
		JobType:         req.JobType,
		Description:     req.Description,
		Location:        req.Location,
		ExperienceYears: req.ExperienceYears,
		Course:          req.Course,
		Eligibility:     req.Eligibility,
		SkillsRequired:  req.SkillsRequired,
		Deadline:        deadline,
		Status:          model.JobStatusOpen,
		PDFDocument:     pdfPath,
		PostedByID:      userID,
	}
	if err := uc.jobRepo.Create(&job); err != nil {
		return nil, err
	}
	return uc.Get(auth.Principal{UserID: userID, Role: auth.RoleRecruiter}, job.ID)
}

func (uc *JobUsecase) Update(userID, id uint, req dto.JobUpdateRequest, pdfPath string) (*dto.JobResponse, error) {
	if ferr := util.ValidateStruct(req); ferr != nil {
		return nil, ferr
	}
	job, err := uc.ownedJob(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.ExperienceYears != nil {
		job.ExperienceYears = *req.ExperienceYears
	}
	if req.Course != nil {
		job.Course = *req.Course
	}
	if req.Eligibility != nil {
		job.Eligibility = *req.Eligibility
	}
	if req.SkillsRequired != nil {
		job.SkillsRequired = *req.SkillsRequired
	}
	if req.Deadline != nil {
		deadline, ferr := uc.parseDeadline(*req.Deadline)
		if ferr != nil {
			return nil, ferr
		}
		job.Deadline = deadline
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if pdfPath != "" {
		job.PDFDocument = pdfPath
	}

	if err := uc.jobRepo.Save(job); err != nil {
		return nil, err
	}
	return uc.Get(auth.Principal{UserID: userID, Role: auth.RoleRecruiter}, id)
}

func (uc *JobUsecase) Delete(userID, id uint) error {
	job, err := uc.ownedJob(userID, id)
	if err != nil {
		return err
	}
	return uc.jobRepo.Delete(job)
}

// ChangeStatus records the transition in the audit trail alongside the update.
func (uc *JobUsecase) ChangeStatus(userID, id uint, req dto.JobStatusUpdateRequest) (*dto.JobStatusChangeResponse, error) {
	if ferr := util.ValidateStruct(req); ferr != nil {
		return nil, ferr
	}
	job, err := uc.ownedJob(userID, id)
	if err != nil {
		return nil, err
	}

	oldStatus := job.Status
	if err := uc.jobRepo.ChangeStatus(job, req.Status, userID, req.Notes); err != nil {
		return nil, err
	}
	return &dto.JobStatusChangeResponse{
		Message:   fmt.Sprintf("Job status updated from %s to %s", oldStatus, req.Status),
		OldStatus: oldStatus,
		NewStatus: req.Status,
	}, nil
}

func (uc *JobUsecase) History(userID, jobID uint) ([]dto.JobStatusHistoryResponse, error) {
	if _, err := uc.ownedJob(userID, jobID); err != nil {
		return nil, err
	}
	rows, err := uc.jobRepo.ListHistory(jobID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(rows))
	for _, r := range rows {
		userIDs = append(userIDs, r.ChangedByID)
	}
	names, err := uc.profileRepo.RecruiterNamesByUserIDs(userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.JobStatusHistoryResponse, 0, len(rows))
	for _, r := range rows {
		name := r.ChangedBy.Email
		if p, ok := names[r.ChangedByID]; ok {
			name = displayName(p.FirstName, p.LastName, r.ChangedBy.Email)
		}
		out = append(out, dto.JobStatusHistoryResponse{
			ID:            r.ID,
			Job:           r.JobID,
			OldStatus:     r.OldStatus,
			NewStatus:     r.NewStatus,
			ChangedBy:     r.ChangedByID,
			ChangedByName: name,
			ChangedAt:     r.ChangedAt.Format(time.RFC3339),
			Notes:         r.Notes,
		})
	}
	return out, nil
}

func (uc *JobUsecase) Statistics(userID uint) (*dto.JobStatisticsResponse, error) {
	today := startOfDay(uc.now())
	stats := dto.JobStatisticsResponse{}

	counts := []struct {
		dest  *int64
		conds []any
	}{
		{&stats.TotalJobs, nil},
		{&stats.OpenJobs, []any{"status = ?", model.JobStatusOpen}},
		{&stats.PausedJobs, []any{"status = ?", model.JobStatusPaused}},
		{&stats.ClosedJobs, []any{"status = ?", model.JobStatusClosed}},
		{&stats.ActiveJobs, []any{"status = ? AND deadline >= ?", model.JobStatusOpen, today}},
		{&stats.ExpiredJobs, []any{"status = ? AND deadline < ?", model.JobStatusOpen, today}},
	}
	for _, c := range counts {
		n, err := uc.jobRepo.CountByOwner(userID, c.conds...)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}
	return &stats, nil
}

func (uc *JobUsecase) SaveJob(facultyID, jobID uint) (*dto.SavedJobResponse, error) {
	if _, err := uc.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	exists, err := uc.jobRepo.SavedExists(facultyID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.NewFormError("validation failed", map[string]string{
			"job": "Job is already saved",
		})
	}

	saved := model.SavedJob{FacultyID: facultyID, JobID: jobID}
	if err := uc.jobRepo.CreateSaved(&saved); err != nil {
		return nil, err
	}

	list, err := uc.ListSaved(facultyID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == saved.ID {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (uc *JobUsecase) ListSaved(facultyID uint) ([]dto.SavedJobResponse, error) {
	saved, err := uc.jobRepo.ListSaved(facultyID)
	if err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0, len(saved))
	for _, s := range saved {
		jobs = append(jobs, s.Job)
	}
	responses, err := uc.jobResponses(jobs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SavedJobResponse, 0, len(saved))
	for i, s := range saved {
		out = append(out, dto.SavedJobResponse{
			ID:      s.ID,
			Job:     responses[i],
			SavedAt: s.SavedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (uc *JobUsecase) UnsaveJob(facultyID, jobID uint) error {
	err := uc.jobRepo.DeleteSaved(facultyID, jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (uc *JobUsecase) IsSaved(facultyID, jobID uint) (bool, error) {
	return uc.jobRepo.SavedExists(facultyID, jobID)
}

// Apply files an application against a job that is still accepting them. The
// applicant's stored resume rides along on the application.
func (uc *JobUsecase) Apply(principal auth.Principal, jobID uint, req dto.JobApplicationRequest) (*dto.JobApplicationResponse, error) {
	job, err := uc.visibleJob(principal, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive(uc.now()) {
		return nil, util.NewFormError("validation failed", map[string]string{
			"job": "This job is no longer accepting applications",
		})
	}
	exists, err := uc.jobRepo.ApplicationExists(jobID, principal.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.NewFormError("validation failed", map[string]string{
			"job": "You have already applied to this job",
		})
	}

	resume := ""
	if p, err := uc.profileRepo.FindFacultyByUserID(principal.UserID); err == nil {
		resume = p.Resume
	}

	app := model.JobApplication{
		JobID:       jobID,
		ApplicantID: principal.UserID,
		Status:      model.ApplicationPending,
		CoverLetter: req.CoverLetter,
		Resume:      resume,
	}
	if err := uc.jobRepo.CreateApplication(&app); err != nil {
		return nil, err
	}

	app.Job = *job
	resp := uc.applicationResponse(&app, principal.Email, nil)
	return &resp, nil
}

func (uc *JobUsecase) Applications(userID, jobID uint) ([]dto.JobApplicationResponse, error) {
	if _, err := uc.ownedJob(userID, jobID); err != nil {
		return nil, err
	}
	apps, err := uc.jobRepo.ListApplications(jobID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(apps))
	for _, a := range apps {
		userIDs = append(userIDs, a.ApplicantID)
	}
	profiles, err := uc.profileRepo.FacultyNamesByUserIDs(userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.JobApplicationResponse, 0, len(apps))
	for i := range apps {
		p, ok := profiles[apps[i].ApplicantID]
		var fp *model.FacultyProfile
		if ok {
			fp = &p
		}
		out = append(out, uc.applicationResponse(&apps[i], apps[i].Applicant.Email, fp))
	}
	return out, nil
}

func (uc *JobUsecase) ownedJob(userID, id uint) (*model.Job, error) {
	job, err := uc.jobRepo.FindOwned(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// visibleJob resolves a job through the same lens List uses, so a job the
// caller cannot list also cannot be fetched by ID.
func (uc *JobUsecase) visibleJob(principal auth.Principal, id uint) (*model.Job, error) {
	switch principal.Role {
	case auth.RoleRecruiter:
		return uc.ownedJob(principal.UserID, id)
	case auth.RoleFaculty:
		job, err := uc.activeJob(id)
		if err != nil {
			return nil, err
		}
		departments, err := uc.jobRepo.FacultyDepartmentNames(principal.UserID)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(departments, job.Department) {
			return nil, ErrNotFound
		}
		return job, nil
	default:
		return uc.activeJob(id)
	}
}

func (uc *JobUsecase) activeJob(id uint) (*model.Job, error) {
	job, err := uc.jobRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !job.IsActive(uc.now()) {
		return nil, ErrNotFound
	}
	return job, nil
}

func (uc *JobUsecase) jobResponses(jobs []model.Job) ([]dto.JobResponse, error) {
	userIDs := make([]uint, 0, len(jobs))
	for _, j := range jobs {
		userIDs = append(userIDs, j.PostedByID)
	}
	names, err := uc.profileRepo.RecruiterNamesByUserIDs(userIDs)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		name := j.PostedBy.Email
		if p, ok := names[j.PostedByID]; ok {
			name = displayName(p.FirstName, p.LastName, j.PostedBy.Email)
		}
		out = append(out, dto.NewJobResponse(j, name, today))
	}
	return out, nil
}

func (uc *JobUsecase) jobResponse(job *model.Job) dto.JobResponse {
	name := job.PostedBy.Email
	if names, err := uc.profileRepo.RecruiterNamesByUserIDs([]uint{job.PostedByID}); err == nil {
		if p, ok := names[job.PostedByID]; ok {
			name = displayName(p.FirstName, p.LastName, job.PostedBy.Email)
		}
	}
	return dto.NewJobResponse(job, name, uc.now())
}

func (uc *JobUsecase) applicationResponse(app *model.JobApplication, applicantEmail string, profile *model.FacultyProfile) dto.JobApplicationResponse {
	name := applicantEmail
	resume := app.Resume
	if profile != nil {
		name = displayName(profile.FirstName, profile.LastName, applicantEmail)
		if resume == "" {
			resume = profile.Resume
		}
	}
	return dto.JobApplicationResponse{
		ID:            app.ID,
		Job:           app.JobID,
		JobTitle:      app.Job.Title,
		Applicant:     app.ApplicantID,
		ApplicantName: name,
		Status:        app.Status,
		CoverLetter:   app.CoverLetter,
		Resume:        util.FileURL(resume),
		AppliedAt:     app.AppliedAt.Format(time.RFC3339),
		UpdatedAt:     app.UpdatedAt.Format(time.RFC3339),
	}
}

func (uc *JobUsecase) parseDeadline(raw string) (*time.Time, *util.FormError) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, util.NewFormError("validation failed", map[string]string{
			"deadline": "Must be a valid date (YYYY-MM-DD)",
		})
	}
	if !d.After(startOfDay(uc.now())) {
		return nil, util.NewFormError("validation failed", map[string]string{
			"deadline": "Deadline must be in the future",
		})
	}
	return &d, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
