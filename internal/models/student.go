package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID        string        `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID string        `gorm:"uniqueIndex" json:"studentId"`
	Name      *string       `json:"name"`
	ClassID   string        `gorm:"index" json:"classId"`
	SessionID *string       `gorm:"index" json:"sessionId"`
	Class     *Class        `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Session   *ClassSession `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
