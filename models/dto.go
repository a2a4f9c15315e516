package models

import "encoding/json"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SubmitReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required,min=1,max=100"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment" binding:"max=2000"`
}

type ReviewListParams struct {
	ApprovedOnly bool `form:"approved_only,default=true"`
	Page         int  `form:"page,default=1"`
	Limit        int  `form:"limit,default=10"`
}

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required"`
}

type CreateUserRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role" binding:"required"`
}

type UpdateLocationRequest struct {
	Name    *string       `json:"name"`
	Address *string       `json:"address"`
	City    *string       `json:"city"`
	Phone   *string       `json:"phone"`
	Email   *string       `json:"email"`
	Image   *string       `json:"image"`
	Type    *LocationType `json:"type"`
}

type InsertFeatureRequest struct {
	// Index is optional; when omitted the feature is appended.
	Index *int   `json:"index"`
	Value string `json:"value" binding:"required"`
}

type UpdateFeatureRequest struct {
	Value string `json:"value" binding:"required"`
}

type UpdateSettingsRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	ContactEmail   string `json:"contact_email" binding:"required,email"`
	Phone          string `json:"phone"`
}

// ImportSnapshotRequest carries the raw snapshot text so a malformed document
// is surfaced as a parse error, not a binding error.
type ImportSnapshotRequest struct {
	Confirm  bool            `json:"confirm"`
	Snapshot json.RawMessage `json:"snapshot" binding:"required"`
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}
