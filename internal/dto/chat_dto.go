package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Projects []ProjectResponse `json:"projects"`
}
