package usecase

import (
	"errors"

	"github.com/google/uuid"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/model"
	"github.com/studentmatch/backend/internal/response"
)

var (
	ErrUnknownField = errors.New("field is not one of the available project fields")
	ErrNotOwner     = errors.New("you do not have permission to edit this project")
)

type projectStore interface {
	Create(project *model.Project) error
	Update(project *model.Project) error
	FindByID(id uint) (*model.Project, error)
	FindPage(page, pageSize int) ([]model.Project, int64, error)
	FindByTeacher(teacherID uuid.UUID) ([]model.Project, error)
}

type interestsByProject interface {
	FindByProject(projectID uint) ([]model.StudentInterest, error)
}

type userGetter interface {
	FindByID(id uuid.UUID) (*model.User, error)
}

type ProjectUsecase struct {
	projects  projectStore
	interests interestsByProject
	users     userGetter
	matchCfg  *config.MatchingConfig
}

func NewProjectUsecase(projects projectStore, interests interestsByProject, users userGetter, matchCfg *config.MatchingConfig) *ProjectUsecase {
	return &ProjectUsecase{projects: projects, interests: interests, users: users, matchCfg: matchCfg}
}

func (uc *ProjectUsecase) Create(teacherID uuid.UUID, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if !uc.matchCfg.HasField(req.Field) {
		return nil, ErrUnknownField
	}

	project := &model.Project{
		Name:              req.Name,
		Description:       req.Description,
		Field:             req.Field,
		SkillRequirements: req.SkillRequirements,
		TeacherID:         teacherID,
	}
	if err := uc.projects.Create(project); err != nil {
		return nil, err
	}

	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (uc *ProjectUsecase) Update(teacherID uuid.UUID, projectID uint, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if !uc.matchCfg.HasField(req.Field) {
		return nil, ErrUnknownField
	}

	project, err := uc.projects.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	if project.TeacherID != teacherID {
		return nil, ErrNotOwner
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Field = req.Field
	project.SkillRequirements = req.SkillRequirements
	if err := uc.projects.Update(project); err != nil {
		return nil, err
	}

	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (uc *ProjectUsecase) Get(projectID uint) (*dto.ProjectResponse, error) {
	project, err := uc.projects.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (uc *ProjectUsecase) List(page, pageSize int) ([]dto.ProjectResponse, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	projects, total, err := uc.projects.FindPage(page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	pagination := response.NewPagination(page, pageSize, len(projects), total)
	return dto.NewProjectResponses(projects), pagination, nil
}

// TeacherDashboard returns a teacher's own projects with the students who
// expressed interest in each.
func (uc *ProjectUsecase) TeacherDashboard(teacherID uuid.UUID) ([]dto.TeacherProjectResponse, error) {
	projects, err := uc.projects.FindByTeacher(teacherID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TeacherProjectResponse, 0, len(projects))
	for i := range projects {
		interests, err := uc.interests.FindByProject(projects[i].ID)
		if err != nil {
			return nil, err
		}

		students := make([]dto.InterestedStudent, 0, len(interests))
		for _, interest := range interests {
			student, err := uc.users.FindByID(interest.StudentID)
			if err != nil {
				continue
			}
			students = append(students, dto.InterestedStudent{Email: student.Email})
		}

		out = append(out, dto.TeacherProjectResponse{
			ProjectResponse:    dto.NewProjectResponse(&projects[i]),
			InterestedStudents: students,
		})
	}
	return out, nil
}
