package models

import "time"

// OrderType distinguishes eat-in from takeaway tickets
type OrderType string

const (
	TypeDineIn   OrderType = "Dine_In"
	TypeTakeAway OrderType = "Take_Away"
)

// Order is an append-only sale record: once written it is never updated
// or deleted, and its items carry price snapshots so later menu edits
// cannot alter historical totals.
type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	OrderNumber  string      `json:"order_number" gorm:"uniqueIndex"`
	CustomerName string      `json:"customer_name" gorm:"not null"`
	OrderType    OrderType   `json:"order_type" gorm:"not null"`
	TableNumber  *string     `json:"table_number,omitempty"`
	Subtotal     float64     `json:"subtotal" gorm:"not null"`
	Tax          float64     `json:"tax" gorm:"not null"`
	Total        float64     `json:"total" gorm:"not null"`
	AmountPaid   float64     `json:"amount_paid" gorm:"not null"`
	ChangeAmount float64     `json:"change_amount" gorm:"not null"`
	CreatedBy    uint        `json:"created_by" gorm:"not null;index"`
	Cashier      *User       `json:"cashier,omitempty" gorm:"foreignKey:CreatedBy"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderID       uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID    uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem      *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	MenuItemName  string    `json:"menu_item_name" gorm:"not null"`  // snapshot name at time of sale
	MenuItemPrice float64   `json:"menu_item_price" gorm:"not null"` // snapshot price at time of sale
	Quantity      int       `json:"quantity" gorm:"not null"`
	LineTotal     float64   `json:"line_total" gorm:"not null"`
}
