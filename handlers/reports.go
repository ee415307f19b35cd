package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pos-backend-api/middleware"
	"pos-backend-api/reports"

	"github.com/gin-gonic/gin"
)

// parseWindow reads the optional startDate/endDate query params against a
// report's default span
func (h *Handler) parseWindow(c *gin.Context, defaultDays int) (reports.Window, bool) {
	w, err := reports.ParseWindow(c.Query("startDate"), c.Query("endDate"), defaultDays, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return reports.Window{}, false
	}
	return w, true
}

// DailySales — per-day order counts and revenue, admin only
func (h *Handler) DailySales(c *gin.Context) {
	w, ok := h.parseWindow(c, 7)
	if !ok {
		return
	}
	rows, err := h.Reports.DailySales(w)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "daily_sales": rows})
}

// MenuSales — per-item units and revenue, admin only
func (h *Handler) MenuSales(c *gin.Context) {
	w, ok := h.parseWindow(c, 30)
	if !ok {
		return
	}
	rows, err := h.Reports.MenuSales(w)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "menu_sales": rows})
}

// CashierPerformance — per-cashier revenue ranking, admin only
func (h *Handler) CashierPerformance(c *gin.Context) {
	w, ok := h.parseWindow(c, 30)
	if !ok {
		return
	}
	rows, err := h.Reports.CashierPerformance(w)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "cashier_performance": rows})
}

// MyPerformance — the calling cashier's own summary
func (h *Handler) MyPerformance(c *gin.Context) {
	w, ok := h.parseWindow(c, 30)
	if !ok {
		return
	}
	userID := middleware.CurrentUser(c).ID
	summary, err := h.Reports.Summarize(w, &userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"performance": summary})
}

// TodaySummary — today's trade; admins see the whole store, cashiers
// their own tickets
func (h *Handler) TodaySummary(c *gin.Context) {
	w := reports.Today(time.Now())
	var createdBy *uint
	if middleware.OwnOnly(c) {
		id := middleware.CurrentUser(c).ID
		createdBy = &id
	}
	summary, err := h.Reports.Summarize(w, createdBy)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// TopSelling — best sellers by units, admin only
func (h *Handler) TopSelling(c *gin.Context) {
	w, ok := h.parseWindow(c, 30)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	rows, err := h.Reports.TopSelling(w, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "top_selling": rows})
}

// RevenueByType — dine-in vs takeaway split, admin only
func (h *Handler) RevenueByType(c *gin.Context) {
	w, ok := h.parseWindow(c, 30)
	if !ok {
		return
	}
	rows, err := h.Reports.RevenueByType(w)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "revenue_by_type": rows})
}
