package services

import (
	"testing"

	"restaurant-cms/models"
	"restaurant-cms/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (UserService, *gorm.DB) {
	db := newTestDB(t)
	return NewUserService(repositories.NewUserRepository(db)), db
}

func TestCreateUserRequiresAdminRole(t *testing.T) {
	svc, _ := newUserService(t)

	req := models.CreateUserRequest{
		Username: "newbie",
		Email:    "newbie@bellavista.example",
		Password: "secret123",
		Role:     models.RoleViewer,
	}

	for _, role := range []models.UserRole{models.RoleEditor, models.RoleViewer} {
		_, err := svc.Create(req, role)
		assert.IsType(t, models.ErrorForbidden{}, err, "role %s must be refused", role)
	}

	user, err := svc.Create(req, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "newbie", user.Username)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
}

func TestCreateUserValidatesRole(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(models.CreateUserRequest{
		Username: "oddball",
		Email:    "oddball@bellavista.example",
		Password: "secret123",
		Role:     "superuser",
	}, models.RoleAdmin)
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestCreateDuplicateUsernameConflicts(t *testing.T) {
	svc, db := newUserService(t)
	createUser(t, db, "taken", models.RoleEditor)

	_, err := svc.Create(models.CreateUserRequest{
		Username: "taken",
		Email:    "other@bellavista.example",
		Password: "secret123",
		Role:     models.RoleViewer,
	}, models.RoleAdmin)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestDeleteUserRequiresAdminRole(t *testing.T) {
	svc, db := newUserService(t)
	target := createUser(t, db, "target", models.RoleViewer)

	err := svc.Delete(target.ID, target.ID+100, models.RoleEditor)
	assert.IsType(t, models.ErrorForbidden{}, err)
}

func TestSelfDeleteRefusedEvenForAdmin(t *testing.T) {
	svc, db := newUserService(t)
	admin := createUser(t, db, "boss", models.RoleAdmin)

	err := svc.Delete(admin.ID, admin.ID, models.RoleAdmin)
	assert.IsType(t, models.ErrorForbidden{}, err)

	// account still exists
	users, err := svc.List(models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteUser(t *testing.T) {
	svc, db := newUserService(t)
	admin := createUser(t, db, "boss", models.RoleAdmin)
	target := createUser(t, db, "leaver", models.RoleEditor)

	require.NoError(t, svc.Delete(target.ID, admin.ID, admin.Role))

	users, err := svc.List(models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "boss", users[0].Username)

	err = svc.Delete(target.ID, admin.ID, admin.Role)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestListUsersRequiresAdminRole(t *testing.T) {
	svc, db := newUserService(t)
	createUser(t, db, "someone", models.RoleViewer)

	_, err := svc.List(models.RoleViewer)
	assert.IsType(t, models.ErrorForbidden{}, err)
}
