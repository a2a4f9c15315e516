package statemachine

import (
	"testing"

	"restaurant-cms/models"

	"github.com/stretchr/testify/assert"
)

func TestModeratorsCanApprovePending(t *testing.T) {
	assert.NoError(t, CanTransition(models.ReviewPending, models.ReviewApproved, models.RoleAdmin))
	assert.NoError(t, CanTransition(models.ReviewPending, models.ReviewApproved, models.RoleEditor))
}

func TestViewerCannotApprove(t *testing.T) {
	err := CanTransition(models.ReviewPending, models.ReviewApproved, models.RoleViewer)
	assert.IsType(t, models.ErrorForbidden{}, err)
}

func TestApprovedIsTerminal(t *testing.T) {
	err := CanTransition(models.ReviewApproved, models.ReviewPending, models.RoleAdmin)
	assert.IsType(t, models.ErrorNotFound{}, err)

	assert.Empty(t, ValidTransitionsFrom(models.ReviewApproved))
}

func TestValidTransitionsFromPending(t *testing.T) {
	nexts := ValidTransitionsFrom(models.ReviewPending)
	assert.Equal(t, []models.ReviewStatus{models.ReviewApproved}, nexts)
}

func TestGetAllTransitions(t *testing.T) {
	all := GetAllTransitions()
	assert.Len(t, all, 2)
	for _, tr := range all {
		assert.Equal(t, models.ReviewPending, tr.From)
		assert.Equal(t, models.ReviewApproved, tr.To)
	}
}
