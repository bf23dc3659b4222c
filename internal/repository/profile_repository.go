package repository

import (
	"github.com/myjobsapp/myjobs-api/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

// GetOrCreateFaculty backfills a missing profile; several endpoints rely on
// this lazy-create behavior on first authenticated access.
func (r *ProfileRepository) GetOrCreateFaculty(userID uint) (*model.FacultyProfile, error) {
	var p model.FacultyProfile
	err := r.db.Where(model.FacultyProfile{UserID: userID}).
		Attrs(model.FacultyProfile{WorkPreference: model.StringList{}}).
		FirstOrCreate(&p).Error
	return &p, err
}

func (r *ProfileRepository) GetOrCreateRecruiter(userID uint) (*model.RecruiterProfile, error) {
	var p model.RecruiterProfile
	err := r.db.Where(model.RecruiterProfile{UserID: userID}).
		Attrs(model.RecruiterProfile{College: "Unknown College"}).
		FirstOrCreate(&p).Error
	return &p, err
}

func (r *ProfileRepository) FindFacultyByUserID(userID uint) (*model.FacultyProfile, error) {
	var p model.FacultyProfile
	err := r.db.First(&p, "user_id = ?", userID).Error
	return &p, err
}

func (r *ProfileRepository) SaveFaculty(p *model.FacultyProfile) error {
	return r.db.Save(p).Error
}

func (r *ProfileRepository) SaveRecruiter(p *model.RecruiterProfile) error {
	return r.db.Save(p).Error
}

func (r *ProfileRepository) CreateFaculty(p *model.FacultyProfile) error {
	return r.db.Create(p).Error
}

func (r *ProfileRepository) CreateRecruiter(p *model.RecruiterProfile) error {
	return r.db.Create(p).Error
}

// RecruiterNamesByUserIDs resolves display names for job listings in one
// query instead of per-row lookups.
func (r *ProfileRepository) RecruiterNamesByUserIDs(userIDs []uint) (map[uint]model.RecruiterProfile, error) {
	out := map[uint]model.RecruiterProfile{}
	if len(userIDs) == 0 {
		return out, nil
	}
	var profiles []model.RecruiterProfile
	if err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.UserID] = p
	}
	return out, nil
}

func (r *ProfileRepository) FacultyNamesByUserIDs(userIDs []uint) (map[uint]model.FacultyProfile, error) {
	out := map[uint]model.FacultyProfile{}
	if len(userIDs) == 0 {
		return out, nil
	}
	var profiles []model.FacultyProfile
	if err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.UserID] = p
	}
	return out, nil
}

func (r *ProfileRepository) ListChildren(dest any, profileID uint, order string) error {
	q := r.db.Where("profile_id = ?", profileID)
	if order != "" {
		q = q.Order(order)
	}
	return q.Find(dest).Error
}

func (r *ProfileRepository) FindChild(dest any, id, profileID uint) error {
	return r.db.First(dest, "id = ? AND profile_id = ?", id, profileID).Error
}

func (r *ProfileRepository) CreateChild(rec any) error {
	return r.db.Create(rec).Error
}

func (r *ProfileRepository) SaveChild(rec any) error {
	return r.db.Save(rec).Error
}

func (r *ProfileRepository) DeleteChild(mdl any, id, profileID uint) error {
	res := r.db.Where("id = ? AND profile_id = ?", id, profileID).Delete(mdl)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FacultyWithTranscripts returns profiles holding at least one transcript,
// with the whole aggregate preloaded for projection.
func (r *ProfileRepository) FacultyWithTranscripts(offset, limit int) ([]model.FacultyProfile, int64, error) {
	base := r.db.Model(&model.FacultyProfile{}).
		Where("id IN (?)", r.db.Model(&model.Transcript{}).Select("DISTINCT profile_id"))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []model.FacultyProfile
	q := r.db.
		Preload("User").
		Preload("TranscriptsList", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("TranscriptsList.Department").
		Preload("TranscriptsList.Courses").
		Preload("TranscriptsList.Courses.Department").
		Where("id IN (?)", r.db.Model(&model.Transcript{}).Select("DISTINCT profile_id")).
		Order("id")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Find(&profiles).Error
	return profiles, total, err
}

// FacultyAggregate loads one profile with everything the detail projection
// walks.
func (r *ProfileRepository) FacultyAggregate(userID uint) (*model.FacultyProfile, error) {
	var p model.FacultyProfile
	err := r.db.
		Preload("User").
		Preload("Educations", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Experiences", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("DocumentsOwned", func(db *gorm.DB) *gorm.DB { return db.Order("uploaded_at DESC") }).
		Preload("TranscriptsList", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("TranscriptsList.Department").
		Preload("TranscriptsList.Courses").
		Preload("TranscriptsList.Courses.Department").
		First(&p, "user_id = ?", userID).Error
	return &p, err
}
