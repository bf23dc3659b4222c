package repository

import (
	"errors"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"gorm.io/gorm"
)

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db}
}

func (r *LookupRepository) ListColleges() ([]model.College, error) {
	var out []model.College
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *LookupRepository) ListDegrees() ([]model.Degree, error) {
	var out []model.Degree
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *LookupRepository) ListDepartments() ([]model.Department, error) {
	var out []model.Department
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *LookupRepository) FindDepartmentByID(id uint) (*model.Department, error) {
	var d model.Department
	err := r.db.First(&d, "id = ?", id).Error
	return &d, err
}

// FindDepartmentByName resolves name references; a miss is reported as nil,
// not an error, because unresolvable names normalize to null.
func (r *LookupRepository) FindDepartmentByName(name string) (*model.Department, error) {
	var d model.Department
	err := r.db.First(&d, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
