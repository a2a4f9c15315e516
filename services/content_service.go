package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant-cms/models"
	"restaurant-cms/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const snapshotVersion = 1

type ContentService interface {
	Load() (models.SiteContent, error)
	Save(content models.SiteContent) error
	UpdateLocation(locationID string, req models.UpdateLocationRequest) (models.SiteContent, error)
	InsertFeature(locationID string, req models.InsertFeatureRequest) (models.SiteContent, error)
	UpdateFeature(locationID string, index int, value string) (models.SiteContent, error)
	RemoveFeature(locationID string, index int) (models.SiteContent, error)
	UpdateSettings(req models.UpdateSettingsRequest) (models.SiteContent, error)
	Export() (models.Snapshot, error)
	Import(raw []byte, confirm bool) (models.SiteContent, error)
	Reset(confirm bool) error
}

type contentService struct {
	contentRepo repositories.ContentRepository
}

func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

// Load returns the stored document, or the bundled defaults when nothing has
// been saved yet. A missing document is not an error.
func (s *contentService) Load() (models.SiteContent, error) {
	doc, err := s.contentRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultSiteContent(), nil
		}
		return models.SiteContent{}, models.ErrorInternalServer{Message: err.Error()}
	}

	var content models.SiteContent
	if err := json.Unmarshal([]byte(doc.Data), &content); err != nil {
		return models.SiteContent{}, models.ErrorInternalServer{Message: "stored content document is corrupt: " + err.Error()}
	}
	return content, nil
}

// Save persists the full document in a single overwrite.
func (s *contentService) Save(content models.SiteContent) error {
	if err := validateContent(content); err != nil {
		return err
	}

	data, err := json.Marshal(content)
	if err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}

	if err := s.contentRepo.Save(string(data)); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}
	return nil
}

func (s *contentService) UpdateLocation(locationID string, req models.UpdateLocationRequest) (models.SiteContent, error) {
	return s.mutate(func(content *models.SiteContent) error {
		loc, err := findLocation(content, locationID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			loc.Name = *req.Name
		}
		if req.Address != nil {
			loc.Address = *req.Address
		}
		if req.City != nil {
			loc.City = *req.City
		}
		if req.Phone != nil {
			loc.Phone = *req.Phone
		}
		if req.Email != nil {
			loc.Email = *req.Email
		}
		if req.Image != nil {
			loc.Image = *req.Image
		}
		if req.Type != nil {
			if *req.Type != models.LocationMainSite && *req.Type != models.LocationBranch {
				return models.ErrorValidation{Message: "location type must be main_site or branch"}
			}
			loc.Type = *req.Type
		}
		return nil
	})
}

func (s *contentService) InsertFeature(locationID string, req models.InsertFeatureRequest) (models.SiteContent, error) {
	return s.mutate(func(content *models.SiteContent) error {
		loc, err := findLocation(content, locationID)
		if err != nil {
			return err
		}

		index := len(loc.Features)
		if req.Index != nil {
			index = *req.Index
		}
		if index < 0 || index > len(loc.Features) {
			return models.ErrorValidation{Message: fmt.Sprintf("feature index %d out of range 0..%d", index, len(loc.Features))}
		}

		features := make([]string, 0, len(loc.Features)+1)
		features = append(features, loc.Features[:index]...)
		features = append(features, req.Value)
		features = append(features, loc.Features[index:]...)
		loc.Features = features
		return nil
	})
}

func (s *contentService) UpdateFeature(locationID string, index int, value string) (models.SiteContent, error) {
	return s.mutate(func(content *models.SiteContent) error {
		loc, err := findLocation(content, locationID)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(loc.Features) {
			return models.ErrorValidation{Message: fmt.Sprintf("feature index %d out of range 0..%d", index, len(loc.Features)-1)}
		}
		loc.Features[index] = value
		return nil
	})
}

// RemoveFeature deletes the entry at index and shifts later entries down by
// one, so the list never has gaps.
func (s *contentService) RemoveFeature(locationID string, index int) (models.SiteContent, error) {
	return s.mutate(func(content *models.SiteContent) error {
		loc, err := findLocation(content, locationID)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(loc.Features) {
			return models.ErrorValidation{Message: fmt.Sprintf("feature index %d out of range 0..%d", index, len(loc.Features)-1)}
		}
		loc.Features = append(loc.Features[:index], loc.Features[index+1:]...)
		return nil
	})
}

// UpdateSettings replaces the settings block wholesale.
func (s *contentService) UpdateSettings(req models.UpdateSettingsRequest) (models.SiteContent, error) {
	return s.mutate(func(content *models.SiteContent) error {
		content.Settings = models.Settings{
			RestaurantName: req.RestaurantName,
			ContactEmail:   req.ContactEmail,
			Phone:          req.Phone,
		}
		return nil
	})
}

// Export wraps the current document in a snapshot envelope for download.
func (s *contentService) Export() (models.Snapshot, error) {
	content, err := s.Load()
	if err != nil {
		return models.Snapshot{}, err
	}

	return models.Snapshot{
		SnapshotID: uuid.NewString(),
		ExportedAt: time.Now(),
		Version:    snapshotVersion,
		Content:    content,
	}, nil
}

// Import parses a snapshot and replaces the whole document. A parse failure
// leaves the current state untouched. The replace is destructive, so it only
// happens with an explicit confirmation.
func (s *contentService) Import(raw []byte, confirm bool) (models.SiteContent, error) {
	var snapshot struct {
		SnapshotID string              `json:"snapshot_id"`
		ExportedAt time.Time           `json:"exported_at"`
		Version    int                 `json:"version"`
		Content    *models.SiteContent `json:"content"`
	}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return models.SiteContent{}, models.ErrorParse{Message: "snapshot is not valid JSON: " + err.Error()}
	}
	if snapshot.Content == nil {
		return models.SiteContent{}, models.ErrorParse{Message: "snapshot has no content document"}
	}

	if err := validateContent(*snapshot.Content); err != nil {
		return models.SiteContent{}, err
	}

	if !confirm {
		return models.SiteContent{}, models.ErrorValidation{Message: "import replaces the entire site content and must be confirmed"}
	}

	if err := s.Save(*snapshot.Content); err != nil {
		return models.SiteContent{}, err
	}
	return *snapshot.Content, nil
}

// Reset clears the stored document so the next Load falls back to defaults.
func (s *contentService) Reset(confirm bool) error {
	if !confirm {
		return models.ErrorValidation{Message: "reset clears all site content and must be confirmed"}
	}

	if err := s.contentRepo.Delete(); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}
	return nil
}

// mutate loads the document, applies the edit in memory and persists the
// result as one overwrite.
func (s *contentService) mutate(edit func(*models.SiteContent) error) (models.SiteContent, error) {
	content, err := s.Load()
	if err != nil {
		return models.SiteContent{}, err
	}

	if err := edit(&content); err != nil {
		return models.SiteContent{}, err
	}

	if err := s.Save(content); err != nil {
		return models.SiteContent{}, err
	}
	return content, nil
}

func findLocation(content *models.SiteContent, locationID string) (*models.Location, error) {
	for i := range content.Locations {
		if content.Locations[i].ID == locationID {
			return &content.Locations[i], nil
		}
	}
	return nil, models.ErrorNotFound{Message: "location not found: " + locationID}
}

func validateContent(content models.SiteContent) error {
	seen := make(map[string]bool, len(content.Locations))
	for _, loc := range content.Locations {
		if loc.ID == "" {
			return models.ErrorValidation{Message: "location id must not be empty"}
		}
		if seen[loc.ID] {
			return models.ErrorValidation{Message: "duplicate location id: " + loc.ID}
		}
		seen[loc.ID] = true
	}
	return nil
}
