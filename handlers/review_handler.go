package handlers

import (
	"strconv"

	"restaurant-cms/helper"
	"restaurant-cms/models"
	"restaurant-cms/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	Helper        *helper.HTTPHelper
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, Helper: &helper.HTTPHelper{}}
}

// SubmitReview accepts a public review submission. The review starts pending
// and is not visible until approved.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	review, err := h.reviewService.Submit(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Review submitted for moderation", review)
}

// GetReviews lists approved reviews with pagination. Passing
// approved_only=false includes pending reviews, but only when the caller
// carries a moderator token; anonymous callers always get the approved list.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	var params models.ReviewListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	includePending := false
	if !params.ApprovedOnly {
		if roleVal, exists := c.Get("role"); exists {
			role := models.UserRole(roleVal.(string))
			includePending = role == models.RoleAdmin || role == models.RoleEditor
		}
	}

	reviews, total, err := h.reviewService.List(params.Page, params.Limit, includePending)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"reviews":    reviews,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ReviewHandler) GetPendingReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListPending()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid review ID", h.Helper.EmptyJsonMap())
		return
	}

	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	review, err := h.reviewService.Approve(uint(id), userID.(uint), models.UserRole(role.(string)))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Review approved", review)
}
