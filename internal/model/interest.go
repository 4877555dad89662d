package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentInterest ties one student to one project. The unique index on
// StudentID enforces the at-most-one-active-interest rule in the schema
// itself rather than by first-matching-record convention.
type StudentInterest struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"student_id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
