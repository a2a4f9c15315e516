package services

import (
	"errors"
	"fmt"
	"time"

	"restaurant-cms/models"
	"restaurant-cms/repositories"
	"restaurant-cms/statemachine"

	"gorm.io/gorm"
)

type ReviewService interface {
	Submit(req models.SubmitReviewRequest) (*models.Review, error)
	List(page, limit int, includePending bool) ([]models.Review, int64, error)
	ListPending() ([]models.Review, error)
	Approve(reviewID uint, actorID uint, actorRole models.UserRole) (*models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// Submit creates a pending review from a public submission. A rating outside
// 1..5 is rejected before anything is persisted.
func (s *reviewService) Submit(req models.SubmitReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, models.ErrorValidation{Message: fmt.Sprintf("rating must be between 1 and 5, got %d", req.Rating)}
	}

	review := &models.Review{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Status:       models.ReviewPending,
		SubmittedAt:  time.Now(),
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return review, nil
}

// List returns approved reviews by default. Moderators can ask for the
// unfiltered list, pending submissions included.
func (s *reviewService) List(page, limit int, includePending bool) ([]models.Review, int64, error) {
	if includePending {
		return s.reviewRepo.GetAll(page, limit)
	}
	return s.reviewRepo.GetList(models.ReviewApproved, page, limit)
}

func (s *reviewService) ListPending() ([]models.Review, error) {
	return s.reviewRepo.GetByStatus(models.ReviewPending)
}

// Approve moves a pending review to approved and stamps who did it and when.
// An unknown id and an already-approved id both come back as not found: only
// a review that is still pending can be approved.
func (s *reviewService) Approve(reviewID uint, actorID uint, actorRole models.UserRole) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "no pending review with that id"}
		}
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	if review.Status != models.ReviewPending {
		return nil, models.ErrorNotFound{Message: "no pending review with that id"}
	}

	if err := statemachine.CanTransition(review.Status, models.ReviewApproved, actorRole); err != nil {
		return nil, err
	}

	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, models.ErrorUnauthorized{Message: "approving user no longer exists"}
	}

	now := time.Now()
	review.Status = models.ReviewApproved
	review.ApprovedAt = &now
	review.ApprovedByID = &actor.ID
	review.ApprovedBy = actor

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return review, nil
}
