package services

import (
	"errors"

	"restaurant-cms/models"
	"restaurant-cms/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	List(actorRole models.UserRole) ([]models.User, error)
	Create(req models.CreateUserRequest, actorRole models.UserRole) (*models.User, error)
	Delete(userID uint, actorID uint, actorRole models.UserRole) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(actorRole models.UserRole) ([]models.User, error) {
	if actorRole != models.RoleAdmin {
		return nil, models.ErrorForbidden{Message: "only admins may list users"}
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}
	return users, nil
}

func (s *userService) Create(req models.CreateUserRequest, actorRole models.UserRole) (*models.User, error) {
	if actorRole != models.RoleAdmin {
		return nil, models.ErrorForbidden{Message: "only admins may create users"}
	}

	if !req.Role.Valid() {
		return nil, models.ErrorValidation{Message: "role must be one of admin, editor, viewer"}
	}

	if existing, err := s.userRepo.GetByUsername(req.Username); err == nil && existing != nil && existing.ID != 0 {
		return nil, models.ErrorConflict{Message: "username already taken"}
	}
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil && existing.ID != 0 {
		return nil, models.ErrorConflict{Message: "email already registered"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique indexes are the authority; a concurrent create of the
		// same username lands here.
		return nil, models.ErrorConflict{Message: "username or email already taken"}
	}

	return user, nil
}

// Delete removes a user. The acting user can never remove their own account,
// regardless of role.
func (s *userService) Delete(userID uint, actorID uint, actorRole models.UserRole) error {
	if actorRole != models.RoleAdmin {
		return models.ErrorForbidden{Message: "only admins may delete users"}
	}

	if userID == actorID {
		return models.ErrorForbidden{Message: "you cannot delete your own account"}
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "user not found"}
		}
		return models.ErrorInternalServer{Message: err.Error()}
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}
	return nil
}
