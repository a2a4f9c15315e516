package repositories

import (
	"restaurant-cms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentDocumentID is the single row holding the serialized site content.
const contentDocumentID uint = 1

type ContentRepository interface {
	Get() (*models.ContentDocument, error)
	Save(data string) error
	Delete() error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Get() (*models.ContentDocument, error) {
	var doc models.ContentDocument
	err := r.db.First(&doc, contentDocumentID).Error
	return &doc, err
}

// Save overwrites the whole document in a single write. Last write wins.
func (r *contentRepository) Save(data string) error {
	doc := models.ContentDocument{ID: contentDocumentID, Data: data}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&doc).Error
}

func (r *contentRepository) Delete() error {
	return r.db.Delete(&models.ContentDocument{}, contentDocumentID).Error
}
