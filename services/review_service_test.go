package services

import (
	"testing"

	"restaurant-cms/models"
	"restaurant-cms/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(t *testing.T) (ReviewService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewReviewService(repositories.NewReviewRepository(db), repositories.NewUserRepository(db))
	return svc, db
}

func TestSubmitRatingBounds(t *testing.T) {
	svc, _ := newReviewService(t)

	tests := []struct {
		rating  int
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{2, false},
		{3, false},
		{4, false},
		{5, false},
		{6, true},
	}

	for _, tt := range tests {
		review, err := svc.Submit(models.SubmitReviewRequest{
			CustomerName: "Anna",
			Rating:       tt.rating,
			Comment:      "Great food",
		})
		if tt.wantErr {
			assert.Error(t, err, "rating %d should be rejected", tt.rating)
			assert.IsType(t, models.ErrorValidation{}, err)
			assert.Nil(t, review)
		} else {
			require.NoError(t, err, "rating %d should be accepted", tt.rating)
			assert.Equal(t, models.ReviewPending, review.Status)
			assert.False(t, review.SubmittedAt.IsZero())
		}
	}
}

func TestSubmitStartsPending(t *testing.T) {
	svc, _ := newReviewService(t)

	review, err := svc.Submit(models.SubmitReviewRequest{
		CustomerName: "Anna",
		Rating:       4,
		Comment:      "Great food",
	})
	require.NoError(t, err)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, review.ID, pending[0].ID)

	approved, total, err := svc.List(1, 10, false)
	require.NoError(t, err)
	assert.Empty(t, approved)
	assert.Zero(t, total)
}

func TestListCanIncludePendingReviews(t *testing.T) {
	svc, db := newReviewService(t)
	admin := createUser(t, db, "moderator", models.RoleAdmin)

	first, err := svc.Submit(models.SubmitReviewRequest{
		CustomerName: "Anna",
		Rating:       4,
		Comment:      "Great food",
	})
	require.NoError(t, err)
	_, err = svc.Approve(first.ID, admin.ID, admin.Role)
	require.NoError(t, err)

	_, err = svc.Submit(models.SubmitReviewRequest{
		CustomerName: "Ben",
		Rating:       2,
		Comment:      "Slow service",
	})
	require.NoError(t, err)

	approvedOnly, total, err := svc.List(1, 10, false)
	require.NoError(t, err)
	require.Len(t, approvedOnly, 1)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, models.ReviewApproved, approvedOnly[0].Status)

	all, total, err := svc.List(1, 10, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.EqualValues(t, 2, total)
}

func TestApproveMovesReviewToApprovedList(t *testing.T) {
	svc, db := newReviewService(t)
	admin := createUser(t, db, "moderator", models.RoleAdmin)

	review, err := svc.Submit(models.SubmitReviewRequest{
		CustomerName: "Anna",
		Rating:       4,
		Comment:      "Great food",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(review.ID, admin.ID, admin.Role)
	require.NoError(t, err)

	assert.Equal(t, models.ReviewApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
	require.NotNil(t, approved.ApprovedByID)
	assert.Equal(t, admin.ID, *approved.ApprovedByID)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	list, total, err := svc.List(1, 10, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, review.ID, list[0].ID)
	require.NotNil(t, list[0].ApprovedBy)
	assert.Equal(t, "moderator", list[0].ApprovedBy.Username)
}

func TestApproveUnknownIDIsNotFound(t *testing.T) {
	svc, db := newReviewService(t)
	admin := createUser(t, db, "moderator", models.RoleAdmin)

	_, err := svc.Approve(9999, admin.ID, admin.Role)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestApproveAlreadyApprovedIsNotFound(t *testing.T) {
	svc, db := newReviewService(t)
	admin := createUser(t, db, "moderator", models.RoleAdmin)

	review, err := svc.Submit(models.SubmitReviewRequest{
		CustomerName: "Anna",
		Rating:       5,
		Comment:      "Great food",
	})
	require.NoError(t, err)

	_, err = svc.Approve(review.ID, admin.ID, admin.Role)
	require.NoError(t, err)

	_, err = svc.Approve(review.ID, admin.ID, admin.Role)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestApproveRequiresModeratorRole(t *testing.T) {
	svc, db := newReviewService(t)
	viewer := createUser(t, db, "viewer", models.RoleViewer)

	review, err := svc.Submit(models.SubmitReviewRequest{
		CustomerName: "Anna",
		Rating:       3,
		Comment:      "Decent",
	})
	require.NoError(t, err)

	_, err = svc.Approve(review.ID, viewer.ID, viewer.Role)
	assert.IsType(t, models.ErrorForbidden{}, err)

	// still pending
	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
