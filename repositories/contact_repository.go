package repositories

import (
	"restaurant-cms/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(message *models.ContactMessage) error
	GetByID(id uint) (*models.ContactMessage, error)
	GetAll() ([]models.ContactMessage, error)
	Update(message *models.ContactMessage) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactRepository) GetByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	return &message, err
}

// GetAll returns messages in storage order; the inbox does not re-sort.
func (r *contactRepository) GetAll() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Find(&messages).Error
	return messages, err
}

func (r *contactRepository) Update(message *models.ContactMessage) error {
	return r.db.Save(message).Error
}
