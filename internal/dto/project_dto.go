package dto

import "github.com/studentmatch/backend/internal/model"

type CreateProjectRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Description       string `json:"description" validate:"required"`
	Field             string `json:"field" validate:"required"`
	SkillRequirements string `json:"skill_requirements"`
}

type UpdateProjectRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Description       string `json:"description" validate:"required"`
	Field             string `json:"field" validate:"required"`
	SkillRequirements string `json:"skill_requirements"`
}

type ProjectResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Field             string `json:"field"`
	SkillRequirements string `json:"skill_requirements"`
	TeacherEmail      string `json:"teacher_email,omitempty"`
}

func NewProjectResponse(p *model.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Field:             p.Field,
		SkillRequirements: p.SkillRequirements,
	}
	if p.Teacher != nil {
		resp.TeacherEmail = p.Teacher.Email
	}
	return resp
}

func NewProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}

// TeacherProjectResponse is a teacher's own project together with the
// students who expressed interest in it.
type TeacherProjectResponse struct {
	ProjectResponse
	InterestedStudents []InterestedStudent `json:"interested_students"`
}

type InterestedStudent struct {
	Email string `json:"email"`
}
