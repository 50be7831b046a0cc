package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/httpresp"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User

	q := h.db.Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	if err := q.Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not load users.")
		return
	}

	httpresp.List(c, users)
}

type SetEnabledRequest struct {
	IsEnabled *bool `json:"is_enabled" binding:"required"`
}

// SetEnabled flips a vet in or out of the new-job broadcast without touching
// the account.
func (h *AdminHandler) SetEnabled(c *gin.Context) {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid user id.")
		return
	}

	var req SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "is_enabled is required.")
		return
	}

	res := h.db.
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_enabled", *req.IsEnabled)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update the user.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// DeleteUser removes the account plus its pets. The delete is lenient: if
// part of the cleanup fails after the user row is gone, the response still
// reports a qualified success instead of a hard failure.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid user id.")
		return
	}

	res := h.db.Delete(&models.User{}, userID)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_user", "Could not delete the user.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	partial := false
	if err := h.db.Where("owner_id = ?", userID).Delete(&models.Pet{}).Error; err != nil {
		partial = true
	}
	if err := h.db.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
		partial = true
	}

	if partial {
		c.JSON(200, gin.H{"success": true, "warning": "user deleted, some related data could not be removed"})
		return
	}

	c.JSON(200, gin.H{"success": true})
}
