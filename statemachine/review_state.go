package statemachine

import (
	"restaurant-cms/models"
)

// Transition defines a valid review state change and who can perform it
type Transition struct {
	From models.ReviewStatus
	To   models.ReviewStatus
	Role models.UserRole
}

// validTransitions is the authoritative state machine definition. Approval is
// terminal: nothing leads out of the approved state.
var validTransitions = []Transition{
	{From: models.ReviewPending, To: models.ReviewApproved, Role: models.RoleAdmin},
	{From: models.ReviewPending, To: models.ReviewApproved, Role: models.RoleEditor},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.ReviewStatus
	To   models.ReviewStatus
	Role models.UserRole
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Role}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.ReviewStatus) []models.ReviewStatus {
	var nexts []models.ReviewStatus
	seen := map[models.ReviewStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given role can move a review from one state to another
func CanTransition(from, to models.ReviewStatus, role models.UserRole) error {
	key := transitionKey{From: from, To: to, Role: role}
	if transitionMap[key] {
		return nil
	}
	if len(ValidTransitionsFrom(from)) == 0 {
		return models.ErrorNotFound{Message: "no pending review to transition: " + string(from) + " is a terminal state"}
	}
	return models.ErrorForbidden{Message: "role '" + string(role) + "' may not move a review from " + string(from) + " to " + string(to)}
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
