package routes

import (
	"pos-backend-api/config"
	"pos-backend-api/handlers"
	"pos-backend-api/middleware"
	"pos-backend-api/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, db *gorm.DB, cfg *config.Config) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.Auth(db, cfg.JWTSecret))
	{
		auth.GET("/auth/me", h.Me)

		// Users
		auth.GET("/users", middleware.Gate(policy.ResourceUsers, policy.ActionList), h.ListUsers)
		auth.GET("/users/:id", middleware.Gate(policy.ResourceUsers, policy.ActionRead), h.GetUser)

		// Menu
		auth.GET("/menu", middleware.Gate(policy.ResourceMenu, policy.ActionList), h.ListMenu)
		auth.GET("/menu/:id", middleware.Gate(policy.ResourceMenu, policy.ActionRead), h.GetMenuItem)
		auth.POST("/menu", middleware.Gate(policy.ResourceMenu, policy.ActionCreate), h.CreateMenuItem)
		auth.PUT("/menu/:id", middleware.Gate(policy.ResourceMenu, policy.ActionUpdate), h.UpdateMenuItem)
		auth.DELETE("/menu/:id", middleware.Gate(policy.ResourceMenu, policy.ActionDelete), h.DeleteMenuItem)

		// Orders — append-only: no update or delete routes exist
		auth.POST("/orders", middleware.Gate(policy.ResourceOrders, policy.ActionCreate), h.CreateOrder)
		auth.GET("/orders", middleware.Gate(policy.ResourceOrders, policy.ActionList), h.ListOrders)
		auth.GET("/orders/:id", middleware.Gate(policy.ResourceOrders, policy.ActionRead), h.GetOrder)

		// Reports
		rep := auth.Group("/reports")
		{
			rep.GET("/daily-sales", middleware.Gate(policy.ResourceReports, policy.ActionDailySales), h.DailySales)
			rep.GET("/menu-sales", middleware.Gate(policy.ResourceReports, policy.ActionMenuSales), h.MenuSales)
			rep.GET("/cashier-performance", middleware.Gate(policy.ResourceReports, policy.ActionCashierPerformance), h.CashierPerformance)
			rep.GET("/my-performance", middleware.Gate(policy.ResourceReports, policy.ActionMyPerformance), h.MyPerformance)
			rep.GET("/today-summary", middleware.Gate(policy.ResourceReports, policy.ActionTodaySummary), h.TodaySummary)
			rep.GET("/top-selling", middleware.Gate(policy.ResourceReports, policy.ActionTopSelling), h.TopSelling)
			rep.GET("/revenue-by-type", middleware.Gate(policy.ResourceReports, policy.ActionRevenueByType), h.RevenueByType)
		}
	}
}
