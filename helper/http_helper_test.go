package helper

import (
	"errors"
	"net/http"
	"testing"

	"restaurant-cms/models"

	"github.com/stretchr/testify/assert"
)

func TestGetStatusCodeMapsDomainErrors(t *testing.T) {
	u := &HTTPHelper{}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", models.ErrorValidation{Message: "rating out of range"}, http.StatusBadRequest},
		{"parse", models.ErrorParse{Message: "bad snapshot"}, http.StatusBadRequest},
		{"unauthorized", models.ErrorUnauthorized{Message: "invalid credentials"}, http.StatusUnauthorized},
		{"forbidden", models.ErrorForbidden{Message: "admins only"}, http.StatusForbidden},
		{"not found", models.ErrorNotFound{Message: "no pending review"}, http.StatusNotFound},
		{"conflict", models.ErrorConflict{Message: "username taken"}, http.StatusConflict},
		{"internal", models.ErrorInternalServer{Message: "boom"}, http.StatusInternalServerError},
		{"untyped", errors.New("anything else"), http.StatusInternalServerError},
		{"no error", nil, http.StatusOK},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, u.GetStatusCode(tt.err), tt.name)
	}
}

func TestDomainErrorsCarryTheirMessage(t *testing.T) {
	assert.EqualError(t, models.ErrorValidation{Message: "rating out of range"}, "rating out of range")
	assert.EqualError(t, models.ErrorParse{Message: "bad snapshot"}, "bad snapshot")
	assert.EqualError(t, models.ErrorNotFound{Message: "no pending review"}, "no pending review")
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "customer_name", Underscore("CustomerName"))
	assert.Equal(t, "rating", Underscore("Rating"))
}
