package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance stores one mark per (student, session, day). The composite
// unique index backs the ON CONFLICT upsert in the attendance controller.
type Attendance struct {
	ID        string        `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID string        `gorm:"uniqueIndex:idx_attendance_mark" json:"studentId"`
	SessionID string        `gorm:"uniqueIndex:idx_attendance_mark" json:"sessionId"`
	Date      time.Time     `gorm:"uniqueIndex:idx_attendance_mark" json:"date"`
	Present   bool          `json:"present"`
	AdminID   string        `json:"adminId"`
	Student   *Student      `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Session   *ClassSession `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	Admin     *Admin        `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
