package handlers

import (
	"net/http"
	"strconv"

	"pos-backend-api/middleware"
	"pos-backend-api/models"
	"pos-backend-api/pricing"
	"pos-backend-api/validation"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	OrderType    string  `json:"order_type" binding:"required"`
	TableNumber  *string `json:"table_number"`
	Items        []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
	AmountPaid float64 `json:"amount_paid" binding:"required"`
}

// CreateOrder rings up a sale through the pricing engine
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := validation.OrderType(req.OrderType); len(errs) > 0 {
		h.respondError(c, errs)
		return
	}

	input := pricing.OrderInput{
		CustomerName: req.CustomerName,
		OrderType:    models.OrderType(req.OrderType),
		TableNumber:  req.TableNumber,
		AmountPaid:   req.AmountPaid,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, pricing.LineInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.Engine.CreateOrder(input, middleware.CurrentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders returns a paginated order history, scoped to the caller's own
// tickets for cashiers
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := h.DB.Model(&models.Order{})
	if middleware.OwnOnly(c) {
		query = query.Where("created_by = ?", middleware.CurrentUser(c).ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		h.respondError(c, err)
		return
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("created_at desc").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error; err != nil {
		h.respondError(c, err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// GetOrder returns one order with its items
func (h *Handler) GetOrder(c *gin.Context) {
	var order models.Order
	if err := h.DB.Preload("Items").Preload("Cashier").First(&order, c.Param("id")).Error; err != nil {
		h.respondError(c, err)
		return
	}
	if middleware.OwnOnly(c) && order.CreatedBy != middleware.CurrentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
