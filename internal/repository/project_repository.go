package repository

import (
	"github.com/google/uuid"
	"github.com/studentmatch/backend/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepository) Update(project *model.Project) error {
	return r.db.Save(project).Error
}

func (r *ProjectRepository) FindByID(id uint) (*model.Project, error) {
	var p model.Project
	err := r.db.Preload("Teacher").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns every project with its owning teacher preloaded. This is
// the candidate list the matching pipeline scores against.
func (r *ProjectRepository) FindAll() ([]model.Project, error) {
	var projects []model.Project
	err := r.db.Preload("Teacher").Order("id").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindPage(page, pageSize int) ([]model.Project, int64, error) {
	var projects []model.Project
	var total int64
	if err := r.db.Model(&model.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Teacher").Order("id").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepository) FindByTeacher(teacherID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.Order("id").Find(&projects, "teacher_id = ?", teacherID).Error
	return projects, err
}
