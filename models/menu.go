package models

import "time"

// MenuCategory groups menu items on the register screen
type MenuCategory string

const (
	CategoryFood      MenuCategory = "Food"
	CategoryBeverages MenuCategory = "Beverages"
	CategoryDesserts  MenuCategory = "Desserts"
)

type MenuItem struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Category    MenuCategory `json:"category" gorm:"not null"`
	Price       float64      `json:"price" gorm:"not null"`
	Description string       `json:"description"`
	IsAvailable bool         `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
