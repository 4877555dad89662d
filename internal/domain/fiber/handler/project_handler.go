package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/middleware"
	"github.com/studentmatch/backend/internal/model"
	"github.com/studentmatch/backend/internal/usecase"
	"github.com/studentmatch/backend/internal/util"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	uc      *usecase.ProjectUsecase
	authCfg *config.AuthConfig
}

func NewProjectHandler(uc *usecase.ProjectUsecase, authCfg *config.AuthConfig) *ProjectHandler {
	return &ProjectHandler{uc: uc, authCfg: authCfg}
}

func (h *ProjectHandler) RegisterRoutes(app *fiber.App) {
	protected := middleware.Protected(h.authCfg)

	projects := app.Group("/api/projects", protected)
	projects.Get("/", h.List)
	projects.Post("/", middleware.RequireRole(model.RoleTeacher), h.Create)
	projects.Get("/:id", h.Get)
	projects.Put("/:id", middleware.RequireRole(model.RoleTeacher), h.Update)

	app.Get("/api/teacher/projects", protected, middleware.RequireRole(model.RoleTeacher), h.TeacherDashboard)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	projects, pagination, err := h.uc.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list projects",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "projects retrieved",
		Data:       projects,
		Pagination: pagination,
	})
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid project id",
		}, err)
	}

	project, err := h.uc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "project not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get project",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "project retrieved",
		Data:    project,
	})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON data",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "project name, description, and field are required",
		}, err)
	}

	project, err := h.uc.Create(middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownField) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create project",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "project created successfully",
		Data:    project,
	})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid project id",
		}, err)
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON data",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "project name, description, and field are required",
		}, err)
	}

	project, err := h.uc.Update(middleware.UserID(c), uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "project not found",
			})
		case errors.Is(err, usecase.ErrNotOwner):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: err.Error(),
			}, err)
		case errors.Is(err, usecase.ErrUnknownField):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update project",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "project updated successfully",
		Data:    project,
	})
}

func (h *ProjectHandler) TeacherDashboard(c *fiber.Ctx) error {
	projects, err := h.uc.TeacherDashboard(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load teacher projects",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "teacher projects retrieved",
		Data:    projects,
	})
}
