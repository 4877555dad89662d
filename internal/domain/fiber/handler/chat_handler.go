package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/middleware"
	"github.com/studentmatch/backend/internal/model"
	"github.com/studentmatch/backend/internal/usecase"
	"github.com/studentmatch/backend/internal/util"
)

type ChatHandler struct {
	uc      *usecase.MatchingUsecase
	authCfg *config.AuthConfig
}

func NewChatHandler(uc *usecase.MatchingUsecase, authCfg *config.AuthConfig) *ChatHandler {
	return &ChatHandler{uc: uc, authCfg: authCfg}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/chat",
		middleware.Protected(h.authCfg),
		middleware.RequireRole(model.RoleStudent),
		middleware.RateLimiter(10, 1*time.Minute),
		h.Chat,
	)
}

// Chat runs the matching pipeline for one student utterance. Matching
// failures never surface here; the pipeline degrades to the full project
// list, so the only errors left are malformed input and persistence.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON data",
		}, err)
	}
	if err := util.ValidateStruct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "message is required",
		}, err)
	}

	result, err := h.uc.Match(c.Context(), req.Message)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to match projects",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "projects matched",
		Data:    result,
	})
}
