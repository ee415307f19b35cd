package handlers

import (
	"pos-backend-api/config"
	"pos-backend-api/pricing"
	"pos-backend-api/reports"

	"gorm.io/gorm"
)

// Handler owns the injected collaborators every route needs. One instance
// is built in main and shared; it holds no per-request state.
type Handler struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Engine  *pricing.Engine
	Reports *reports.Aggregator
}

func New(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{
		DB:      db,
		Cfg:     cfg,
		Engine:  pricing.NewEngine(db),
		Reports: reports.NewAggregator(db),
	}
}
