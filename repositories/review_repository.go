package repositories

import (
	"restaurant-cms/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByStatus(status models.ReviewStatus) ([]models.Review, error)
	GetList(status models.ReviewStatus, page, limit int) ([]models.Review, int64, error)
	GetAll(page, limit int) ([]models.Review, int64, error)
	Update(review *models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("ApprovedBy").First(&review, id).Error
	return &review, err
}

func (r *reviewRepository) GetByStatus(status models.ReviewStatus) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("status = ?", status).
		Preload("ApprovedBy").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetList(status models.ReviewStatus, page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := r.db.Model(&models.Review{}).Where("status = ?", status).Preload("ApprovedBy")
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Find(&reviews).Error

	return reviews, total, err
}

func (r *reviewRepository) GetAll(page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := r.db.Model(&models.Review{}).Preload("ApprovedBy")
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Find(&reviews).Error

	return reviews, total, err
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}
