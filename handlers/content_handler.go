package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"restaurant-cms/helper"
	"restaurant-cms/models"
	"restaurant-cms/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService services.ContentService
	Helper         *helper.HTTPHelper
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService, Helper: &helper.HTTPHelper{}}
}

// GetPublicLocations serves the marketing site's location list from the
// current content document.
func (h *ContentHandler) GetPublicLocations(c *gin.Context) {
	content, err := h.contentService.Load()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"locations": content.Locations,
	})
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	content, err := h.contentService.Load()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", content)
}

// SaveContent replaces the whole document. There is no merge; the last save
// wins.
func (h *ContentHandler) SaveContent(c *gin.Context) {
	var content models.SiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.contentService.Save(content); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Content saved", content)
}

func (h *ContentHandler) UpdateLocation(c *gin.Context) {
	var req models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	content, err := h.contentService.UpdateLocation(c.Param("id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Location updated", content)
}

func (h *ContentHandler) InsertFeature(c *gin.Context) {
	var req models.InsertFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	content, err := h.contentService.InsertFeature(c.Param("id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Feature added", content)
}

func (h *ContentHandler) UpdateFeature(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid feature index", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	content, err := h.contentService.UpdateFeature(c.Param("id"), index, req.Value)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Feature updated", content)
}

func (h *ContentHandler) RemoveFeature(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid feature index", h.Helper.EmptyJsonMap())
		return
	}

	content, err := h.contentService.RemoveFeature(c.Param("id"), index)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Feature removed", content)
}

func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	content, err := h.contentService.UpdateSettings(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Settings updated", content)
}

// ExportSnapshot serves the full document as a downloadable backup file.
func (h *ContentHandler) ExportSnapshot(c *gin.Context) {
	snapshot, err := h.contentService.Export()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	filename := backupFilename(snapshot.Content.Settings.RestaurantName)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.JSON(200, snapshot)
}

func (h *ContentHandler) ImportSnapshot(c *gin.Context) {
	var req models.ImportSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	content, err := h.contentService.Import(req.Snapshot, req.Confirm)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Content imported", content)
}

func (h *ContentHandler) ResetContent(c *gin.Context) {
	var req models.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.contentService.Reset(req.Confirm); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	content, err := h.contentService.Load()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Content reset to defaults", content)
}

func backupFilename(restaurantName string) string {
	slug := strings.ToLower(strings.TrimSpace(restaurantName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "site"
	}
	return slug + "-backup.json"
}
