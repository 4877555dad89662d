package dto

import (
	"time"

	"github.com/google/uuid"
)

type InterestResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProjectID uint             `json:"project_id"`
	Project   *ProjectResponse `json:"project,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
