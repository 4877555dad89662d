package usecase

import (
	"errors"

	"github.com/google/uuid"
	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/model"
	"gorm.io/gorm"
)

var (
	ErrAlreadyThisProject  = errors.New("you have already selected this project")
	ErrAlreadyOtherProject = errors.New("you have already selected another project, cancel your previous selection first")
)

type interestStore interface {
	Create(interest *model.StudentInterest) error
	FindByStudent(studentID uuid.UUID) (*model.StudentInterest, error)
	FindByProject(projectID uint) ([]model.StudentInterest, error)
	DeleteByStudentAndProject(studentID uuid.UUID, projectID uint) error
}

type projectGetter interface {
	FindByID(id uint) (*model.Project, error)
}

type InterestUsecase struct {
	interests interestStore
	projects  projectGetter
}

func NewInterestUsecase(interests interestStore, projects projectGetter) *InterestUsecase {
	return &InterestUsecase{interests: interests, projects: projects}
}

// Express records a student's interest in a project. A student can hold at
// most one active interest; the unique index on student_id backs this check
// so the rule holds even under concurrent requests.
func (uc *InterestUsecase) Express(studentID uuid.UUID, projectID uint) error {
	if _, err := uc.projects.FindByID(projectID); err != nil {
		return err
	}

	existing, err := uc.interests.FindByStudent(studentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		if existing.ProjectID == projectID {
			return ErrAlreadyThisProject
		}
		return ErrAlreadyOtherProject
	}

	interest := &model.StudentInterest{
		ID:        uuid.New(),
		StudentID: studentID,
		ProjectID: projectID,
	}
	if err := uc.interests.Create(interest); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyOtherProject
		}
		return err
	}
	return nil
}

func (uc *InterestUsecase) Cancel(studentID uuid.UUID, projectID uint) error {
	return uc.interests.DeleteByStudentAndProject(studentID, projectID)
}

func (uc *InterestUsecase) ListForStudent(studentID uuid.UUID) ([]dto.InterestResponse, error) {
	interest, err := uc.interests.FindByStudent(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.InterestResponse{}, nil
		}
		return nil, err
	}

	resp := dto.InterestResponse{
		ID:        interest.ID,
		ProjectID: interest.ProjectID,
		CreatedAt: interest.CreatedAt,
	}
	if interest.Project != nil {
		p := dto.NewProjectResponse(interest.Project)
		resp.Project = &p
	}
	return []dto.InterestResponse{resp}, nil
}
