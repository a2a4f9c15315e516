package services

import (
	"errors"
	"time"

	"restaurant-cms/models"
	"restaurant-cms/repositories"

	"gorm.io/gorm"
)

type ContactService interface {
	Submit(req models.SubmitContactRequest) (*models.ContactMessage, error)
	List() ([]models.ContactMessage, int, error)
	MarkRead(id uint) (*models.ContactMessage, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) Submit(req models.SubmitContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		IsRead:      false,
		SubmittedAt: time.Now(),
	}

	if err := s.contactRepo.Create(message); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return message, nil
}

// List returns all messages in backend order together with the unread count.
// The count is always derived from the rows, never stored separately.
func (s *contactService) List() ([]models.ContactMessage, int, error) {
	messages, err := s.contactRepo.GetAll()
	if err != nil {
		return nil, 0, models.ErrorInternalServer{Message: err.Error()}
	}

	unread := 0
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
	}

	return messages, unread, nil
}

// MarkRead flips the read flag. Marking an already-read message again is a
// no-op, not an error.
func (s *contactService) MarkRead(id uint) (*models.ContactMessage, error) {
	message, err := s.contactRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "contact message not found"}
		}
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	if message.IsRead {
		return message, nil
	}

	message.IsRead = true
	if err := s.contactRepo.Update(message); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return message, nil
}
