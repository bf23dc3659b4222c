package repository

import (
	"github.com/myjobsapp/myjobs-api/internal/model"
	"gorm.io/gorm"
)

type TranscriptRepository struct {
	db *gorm.DB
}

func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db}
}

func (r *TranscriptRepository) ListByProfile(profileID uint) ([]model.Transcript, error) {
	var transcripts []model.Transcript
	err := r.db.
		Preload("Department").
		Preload("Courses").
		Preload("Courses.Department").
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&transcripts).Error
	return transcripts, err
}

func (r *TranscriptRepository) FindByID(id, profileID uint) (*model.Transcript, error) {
	var t model.Transcript
	err := r.db.
		Preload("Department").
		Preload("Courses").
		Preload("Courses.Department").
		First(&t, "id = ? AND profile_id = ?", id, profileID).Error
	return &t, err
}

// CreateWithCourses inserts the transcript and its validated courses in one
// transaction so a failing course leaves nothing behind.
func (r *TranscriptRepository) CreateWithCourses(t *model.Transcript, courses []model.Course) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		for i := range courses {
			courses[i].TranscriptID = t.ID
			if err := tx.Create(&courses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithCourses saves transcript fields and, when replaceCourses is set,
// swaps the full course list. Delete-then-insert runs inside the transaction
// so readers never observe a half-replaced transcript.
func (r *TranscriptRepository) UpdateWithCourses(t *model.Transcript, courses []model.Course, replaceCourses bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Courses", "Department").Save(t).Error; err != nil {
			return err
		}
		if !replaceCourses {
			return nil
		}
		if err := tx.Where("transcript_id = ?", t.ID).Delete(&model.Course{}).Error; err != nil {
			return err
		}
		for i := range courses {
			courses[i].ID = 0
			courses[i].TranscriptID = t.ID
			if err := tx.Create(&courses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TranscriptRepository) Delete(id, profileID uint) error {
	res := r.db.Where("id = ? AND profile_id = ?", id, profileID).Delete(&model.Transcript{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	// child rows go with the transcript even when FK cascading is off
	return r.db.Where("transcript_id = ?", id).Delete(&model.Course{}).Error
}
