package models

import (
	"time"

	"gorm.io/gorm"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
)

// Review is a customer-submitted rating. It starts out pending and becomes
// publicly visible only after an admin approves it. There is no rejection or
// deletion state.
type Review struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	CustomerName string         `json:"customer_name" gorm:"not null"`
	Rating       int            `json:"rating" gorm:"not null"`
	Comment      string         `json:"comment" gorm:"type:text"`
	Status       ReviewStatus   `json:"status" gorm:"default:'pending';index"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	ApprovedAt   *time.Time     `json:"approved_at,omitempty"`
	ApprovedByID *uint          `json:"approved_by_id,omitempty"`
	ApprovedBy   *User          `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
