package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a public contact-form submission. IsRead only ever flips
// to true; there is no mark-unread operation.
type ContactMessage struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email" gorm:"not null"`
	Phone       string         `json:"phone,omitempty"`
	Subject     string         `json:"subject"`
	Message     string         `json:"message" gorm:"type:text;not null"`
	IsRead      bool           `json:"is_read" gorm:"default:false"`
	SubmittedAt time.Time      `json:"submitted_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
