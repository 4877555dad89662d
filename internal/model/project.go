package model

import (
	"time"

	"github.com/google/uuid"
)

// Project uses a numeric primary key on purpose: ids round-trip through the
// ranker's JSON protocol and small integers survive that round trip reliably.
type Project struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Field             string    `gorm:"type:varchar(50);not null" json:"field"`
	SkillRequirements string    `gorm:"type:text" json:"skill_requirements"`
	TeacherID         uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher           *User     `gorm:"foreignKey:TeacherID" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
