package models

import (
	"time"
)

type LocationType string

const (
	LocationMainSite LocationType = "main_site"
	LocationBranch   LocationType = "branch"
)

// Location is one physical restaurant. Features is an ordered list edited
// by index from the admin panel.
type Location struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	City     string       `json:"city"`
	Phone    string       `json:"phone"`
	Email    string       `json:"email"`
	Features []string     `json:"features"`
	Image    string       `json:"image"`
	Type     LocationType `json:"type"`
}

// Settings is the flat site-wide key/value block, replaced wholesale on save.
type Settings struct {
	RestaurantName string `json:"restaurant_name"`
	ContactEmail   string `json:"contact_email"`
	Phone          string `json:"phone"`
}

// SiteContent is the single editable content document. It is owned by the
// content service and replaced as a whole — there is no partial-update
// concurrency control, the last save wins.
type SiteContent struct {
	Locations []Location `json:"locations"`
	Settings  Settings   `json:"settings"`
}

// ContentDocument is the storage row holding the serialized SiteContent.
// There is at most one row; its absence means "use the bundled defaults".
type ContentDocument struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Data      string    `json:"data" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot is the backup/restore envelope around a full SiteContent document.
type Snapshot struct {
	SnapshotID string      `json:"snapshot_id"`
	ExportedAt time.Time   `json:"exported_at"`
	Version    int         `json:"version"`
	Content    SiteContent `json:"content"`
}

// DefaultSiteContent returns the bundled document used whenever no content
// has been saved or the store has been reset.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		Locations: []Location{
			{
				ID:      "main",
				Name:    "Bella Vista",
				Address: "Hauptstrasse 12",
				City:    "Heidelberg",
				Phone:   "+49 6221 100200",
				Email:   "info@bellavista.example",
				Features: []string{
					"Outdoor terrace",
					"Wood-fired oven",
					"Family friendly",
				},
				Image: "/images/locations/main.jpg",
				Type:  LocationMainSite,
			},
			{
				ID:      "riverside",
				Name:    "Bella Vista Riverside",
				Address: "Uferweg 3",
				City:    "Heidelberg",
				Phone:   "+49 6221 100300",
				Email:   "riverside@bellavista.example",
				Features: []string{
					"River view",
					"Private dining room",
				},
				Image: "/images/locations/riverside.jpg",
				Type:  LocationBranch,
			},
		},
		Settings: Settings{
			RestaurantName: "Bella Vista",
			ContactEmail:   "info@bellavista.example",
			Phone:          "+49 6221 100200",
		},
	}
}
