package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/middleware"
	"github.com/studentmatch/backend/internal/model"
	"github.com/studentmatch/backend/internal/usecase"
	"github.com/studentmatch/backend/internal/util"
	"gorm.io/gorm"
)

type InterestHandler struct {
	uc      *usecase.InterestUsecase
	authCfg *config.AuthConfig
}

func NewInterestHandler(uc *usecase.InterestUsecase, authCfg *config.AuthConfig) *InterestHandler {
	return &InterestHandler{uc: uc, authCfg: authCfg}
}

func (h *InterestHandler) RegisterRoutes(app *fiber.App) {
	protected := middleware.Protected(h.authCfg)
	student := middleware.RequireRole(model.RoleStudent)

	app.Post("/api/projects/:id/interest", protected, student, h.Express)
	app.Delete("/api/projects/:id/interest", protected, student, h.Cancel)
	app.Get("/api/student/interests", protected, student, h.List)
}

func (h *InterestHandler) Express(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid project id",
		}, err)
	}

	if err := h.uc.Express(middleware.UserID(c), uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "project not found",
			})
		case errors.Is(err, usecase.ErrAlreadyThisProject),
			errors.Is(err, usecase.ErrAlreadyOtherProject):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to record interest",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "interest expressed successfully",
	})
}

func (h *InterestHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid project id",
		}, err)
	}

	if err := h.uc.Cancel(middleware.UserID(c), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "no interest found for this project",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to cancel interest",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "selection cancelled",
	})
}

func (h *InterestHandler) List(c *fiber.Ctx) error {
	interests, err := h.uc.ListForStudent(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list interests",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "interests retrieved",
		Data:    interests,
	})
}
