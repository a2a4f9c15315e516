package handlers

import (
	"strconv"

	"restaurant-cms/helper"
	"restaurant-cms/models"
	"restaurant-cms/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService, Helper: &helper.HTTPHelper{}}
}

func actingUser(c *gin.Context) (uint, models.UserRole) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")
	return userID.(uint), models.UserRole(role.(string))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	_, role := actingUser(c)

	users, err := h.userService.List(role)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	_, role := actingUser(c)

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.Create(req, role)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User created", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID, role := actingUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.userService.Delete(uint(id), actorID, role); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User deleted", h.Helper.EmptyJsonMap())
}
