package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/middleware"
	"github.com/studentmatch/backend/internal/usecase"
	"github.com/studentmatch/backend/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/register", middleware.RateLimiter(10, 1*time.Minute), h.Register)
	auth.Post("/login", middleware.RateLimiter(10, 1*time.Minute), h.Login)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON data",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "validation failed",
		}, err)
	}

	result, err := h.uc.Register(req)
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, usecase.ErrEmailTaken) {
			code = fiber.StatusConflict
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: err.Error(),
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "registered successfully",
		Data:    result,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON data",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "validation failed",
		}, err)
	}

	result, err := h.uc.Login(req)
	if err != nil {
		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			code = fiber.StatusUnauthorized
		case errors.Is(err, usecase.ErrRoleMismatch):
			code = fiber.StatusForbidden
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: err.Error(),
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "login successful",
		Data:    result,
	})
}
