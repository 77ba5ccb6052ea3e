package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FinanceIncome  = "income"
	FinanceExpense = "expense"
)

type Finance struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string    `gorm:"index" json:"type"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Date        time.Time `gorm:"index" json:"date"`
	AdminID     string    `json:"adminId"`
	Admin       *Admin    `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (f *Finance) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

func IsValidFinanceType(t string) bool {
	return t == FinanceIncome || t == FinanceExpense
}
