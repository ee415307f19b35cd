package handlers

import (
	"net/http"
	"strconv"

	"pos-backend-api/middleware"
	"pos-backend-api/models"

	"github.com/gin-gonic/gin"
)

// ListUsers returns all accounts — admin only
func (h *Handler) ListUsers(c *gin.Context) {
	query := h.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// GetUser returns one account. Cashiers may only fetch themselves.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if middleware.OwnOnly(c) && uint(id) != middleware.CurrentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own account"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, uint(id)).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
