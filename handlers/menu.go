package handlers

import (
	"net/http"

	"pos-backend-api/middleware"
	"pos-backend-api/models"
	"pos-backend-api/validation"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
}

// UpdateMenuItemRequest uses pointers so absent fields are left untouched
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	IsAvailable *bool    `json:"is_available"`
}

// ListMenu returns menu items. Cashiers see only what is currently
// sellable unless they ask otherwise; admins see everything by default.
func (h *Handler) ListMenu(c *gin.Context) {
	query := h.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	available, availableSet := c.GetQuery("available")
	switch {
	case availableSet:
		query = query.Where("is_available = ?", available == "true")
	case middleware.CurrentUser(c).Role == models.RoleCashier:
		query = query.Where("is_available = ?", true)
	}

	var items []models.MenuItem
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetMenuItem returns a single menu item
func (h *Handler) GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, c.Param("id")).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateMenuItem adds a new item — admin only
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := validation.MenuItemFields(&req.Name, &req.Category, &req.Price); len(errs) > 0 {
		h.respondError(c, errs)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Category:    models.MenuCategory(req.Category),
		Price:       req.Price,
		Description: req.Description,
		IsAvailable: true,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem updates the provided fields of one item — admin only
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, c.Param("id")).Error; err != nil {
		h.respondError(c, err)
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := validation.MenuItemFields(req.Name, req.Category, req.Price); len(errs) > 0 {
		h.respondError(c, errs)
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.IsAvailable != nil {
		update["is_available"] = *req.IsAvailable
	}
	if len(update) > 0 {
		if err := h.DB.Model(&item).Updates(update).Error; err != nil {
			h.respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item — admin only. Historical orders keep
// their snapshot name and price.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, c.Param("id")).Error; err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.DB.Delete(&item).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
