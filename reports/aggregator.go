package reports

import (
	"sort"

	"pos-backend-api/models"
	"pos-backend-api/pricing"

	"gorm.io/gorm"
)

// Aggregator answers the sales reports. Every report fetches its
// date-filtered rows through the injected store handle and reduces them in
// memory; reports are read-only and keep no state between calls.
type Aggregator struct {
	db *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// ordersIn fetches orders inside the window, optionally narrowed to one
// creator and optionally with line items (and their live menu rows) attached.
func (a *Aggregator) ordersIn(w Window, createdBy *uint, withItems bool) ([]models.Order, error) {
	query := a.db.Where("created_at >= ? AND created_at < ?", w.Start, w.End)
	if createdBy != nil {
		query = query.Where("created_by = ?", *createdBy)
	}
	if withItems {
		query = query.Preload("Items.MenuItem")
	}
	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ── Daily sales ─────────────────────────────────────────────────────────

type DailySalesRow struct {
	Date          string  `json:"date"`
	OrderCount    int     `json:"order_count"`
	Revenue       float64 `json:"revenue"`
	DineInCount   int     `json:"dine_in_count"`
	TakeAwayCount int     `json:"take_away_count"`
}

// DailySales buckets orders by calendar day, newest day first
func (a *Aggregator) DailySales(w Window) ([]DailySalesRow, error) {
	orders, err := a.ordersIn(w, nil, false)
	if err != nil {
		return nil, err
	}

	byDay := map[string]*DailySalesRow{}
	for _, o := range orders {
		day := o.CreatedAt.Format(dateLayout)
		row, ok := byDay[day]
		if !ok {
			row = &DailySalesRow{Date: day}
			byDay[day] = row
		}
		row.OrderCount++
		row.Revenue = pricing.Round2(row.Revenue + o.Total)
		switch o.OrderType {
		case models.TypeDineIn:
			row.DineInCount++
		case models.TypeTakeAway:
			row.TakeAwayCount++
		}
	}

	result := make([]DailySalesRow, 0, len(byDay))
	for _, row := range byDay {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

// ── Menu sales ──────────────────────────────────────────────────────────

type MenuSalesRow struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// MenuSales buckets line items by (snapshot name, category). The category
// comes from the live menu row; items deleted from the menu since the sale
// report as Uncategorized.
func (a *Aggregator) MenuSales(w Window) ([]MenuSalesRow, error) {
	orders, err := a.ordersIn(w, nil, true)
	if err != nil {
		return nil, err
	}

	type key struct{ name, category string }
	byItem := map[key]*MenuSalesRow{}
	for _, o := range orders {
		for _, item := range o.Items {
			category := "Uncategorized"
			if item.MenuItem != nil && item.MenuItem.ID != 0 {
				category = string(item.MenuItem.Category)
			}
			k := key{item.MenuItemName, category}
			row, ok := byItem[k]
			if !ok {
				row = &MenuSalesRow{Name: k.name, Category: k.category}
				byItem[k] = row
			}
			row.UnitsSold += item.Quantity
			row.Revenue = pricing.Round2(row.Revenue + item.LineTotal)
		}
	}

	result := make([]MenuSalesRow, 0, len(byItem))
	for _, row := range byItem {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].UnitsSold != result[j].UnitsSold {
			return result[i].UnitsSold > result[j].UnitsSold
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// ── Cashier performance ─────────────────────────────────────────────────

type CashierPerformanceRow struct {
	CashierID         uint    `json:"cashier_id"`
	Username          string  `json:"username"`
	OrderCount        int     `json:"order_count"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// CashierPerformance ranks cashier-role users by revenue. Cashiers with no
// orders in the window still appear with zeroes.
func (a *Aggregator) CashierPerformance(w Window) ([]CashierPerformanceRow, error) {
	var cashiers []models.User
	if err := a.db.Where("role = ?", models.RoleCashier).Find(&cashiers).Error; err != nil {
		return nil, err
	}
	orders, err := a.ordersIn(w, nil, false)
	if err != nil {
		return nil, err
	}

	byID := map[uint]*CashierPerformanceRow{}
	for _, u := range cashiers {
		byID[u.ID] = &CashierPerformanceRow{CashierID: u.ID, Username: u.Username}
	}
	for _, o := range orders {
		row, ok := byID[o.CreatedBy]
		if !ok {
			continue // admin-created orders are not cashier performance
		}
		row.OrderCount++
		row.Revenue = pricing.Round2(row.Revenue + o.Total)
	}

	result := make([]CashierPerformanceRow, 0, len(byID))
	for _, row := range byID {
		if row.OrderCount > 0 {
			row.AverageOrderValue = pricing.Round2(row.Revenue / float64(row.OrderCount))
		}
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Username < result[j].Username
	})
	return result, nil
}

// ── Single summaries ────────────────────────────────────────────────────

type Summary struct {
	OrderCount        int     `json:"order_count"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	DineInCount       int     `json:"dine_in_count"`
	TakeAwayCount     int     `json:"take_away_count"`
}

// Summarize reduces the window to one row; createdBy nil means all orders,
// otherwise only that user's. Backs both the my-performance and
// today-summary reports.
func (a *Aggregator) Summarize(w Window, createdBy *uint) (Summary, error) {
	orders, err := a.ordersIn(w, createdBy, false)
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, o := range orders {
		s.OrderCount++
		s.Revenue = pricing.Round2(s.Revenue + o.Total)
		switch o.OrderType {
		case models.TypeDineIn:
			s.DineInCount++
		case models.TypeTakeAway:
			s.TakeAwayCount++
		}
	}
	if s.OrderCount > 0 {
		s.AverageOrderValue = pricing.Round2(s.Revenue / float64(s.OrderCount))
	}
	return s, nil
}

// ── Top selling ─────────────────────────────────────────────────────────

const DefaultTopLimit = 10

type TopSellingRow struct {
	Name      string  `json:"name"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
	UnitPrice float64 `json:"unit_price"`
}

// TopSelling ranks items by units sold and truncates to limit. UnitPrice
// is the most recent snapshot in the window when an item's price changed
// mid-window.
func (a *Aggregator) TopSelling(w Window, limit int) ([]TopSellingRow, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	orders, err := a.ordersIn(w, nil, true)
	if err != nil {
		return nil, err
	}

	byName := map[string]*TopSellingRow{}
	for _, o := range orders {
		for _, item := range o.Items {
			row, ok := byName[item.MenuItemName]
			if !ok {
				// orders arrive newest-first, so the first snapshot seen
				// is the item's most recent price
				row = &TopSellingRow{Name: item.MenuItemName, UnitPrice: item.MenuItemPrice}
				byName[item.MenuItemName] = row
			}
			row.UnitsSold += item.Quantity
			row.Revenue = pricing.Round2(row.Revenue + item.LineTotal)
		}
	}

	result := make([]TopSellingRow, 0, len(byName))
	for _, row := range byName {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].UnitsSold != result[j].UnitsSold {
			return result[i].UnitsSold > result[j].UnitsSold
		}
		return result[i].Name < result[j].Name
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── Revenue by type ─────────────────────────────────────────────────────

type RevenueByTypeRow struct {
	OrderType         models.OrderType `json:"order_type"`
	OrderCount        int              `json:"order_count"`
	Revenue           float64          `json:"revenue"`
	AverageOrderValue float64          `json:"average_order_value"`
	Percentage        float64          `json:"percentage"`
}

// RevenueByType splits the window by dine-in vs takeaway. Percentage is the
// group's share of the window's order count, to two decimals.
func (a *Aggregator) RevenueByType(w Window) ([]RevenueByTypeRow, error) {
	orders, err := a.ordersIn(w, nil, false)
	if err != nil {
		return nil, err
	}

	byType := map[models.OrderType]*RevenueByTypeRow{}
	for _, o := range orders {
		row, ok := byType[o.OrderType]
		if !ok {
			row = &RevenueByTypeRow{OrderType: o.OrderType}
			byType[o.OrderType] = row
		}
		row.OrderCount++
		row.Revenue = pricing.Round2(row.Revenue + o.Total)
	}

	total := len(orders)
	result := make([]RevenueByTypeRow, 0, len(byType))
	for _, row := range byType {
		row.AverageOrderValue = pricing.Round2(row.Revenue / float64(row.OrderCount))
		if total > 0 {
			row.Percentage = pricing.Round2(float64(row.OrderCount) / float64(total) * 100)
		}
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Revenue > result[j].Revenue })
	return result, nil
}
