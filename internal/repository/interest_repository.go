package repository

import (
	"github.com/google/uuid"
	"github.com/studentmatch/backend/internal/model"
	"gorm.io/gorm"
)

type InterestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) *InterestRepository {
	return &InterestRepository{db}
}

func (r *InterestRepository) Create(interest *model.StudentInterest) error {
	return r.db.Create(interest).Error
}

func (r *InterestRepository) FindByStudent(studentID uuid.UUID) (*model.StudentInterest, error) {
	var interest model.StudentInterest
	err := r.db.Preload("Project").First(&interest, "student_id = ?", studentID).Error
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

func (r *InterestRepository) FindByProject(projectID uint) ([]model.StudentInterest, error) {
	var interests []model.StudentInterest
	err := r.db.Order("created_at").Find(&interests, "project_id = ?", projectID).Error
	return interests, err
}

func (r *InterestRepository) DeleteByStudentAndProject(studentID uuid.UUID, projectID uint) error {
	res := r.db.Delete(&model.StudentInterest{}, "student_id = ? AND project_id = ?", studentID, projectID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
