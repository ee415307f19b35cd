package pricing

import (
	"errors"
	"fmt"

	"pos-backend-api/models"

	"gorm.io/gorm"
)

// ErrNoItems rejects an order with an empty line-item list
var ErrNoItems = errors.New("order must contain at least one item")

// ItemUnavailableError names the menu item that blocked an order, either
// because the id resolved to nothing or the item is switched off.
type ItemUnavailableError struct {
	MenuItemID uint
	Name       string
}

func (e *ItemUnavailableError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("menu item '%s' is not available", e.Name)
	}
	return fmt.Sprintf("menu item %d not found", e.MenuItemID)
}

// InsufficientPaymentError reports both sides of a short payment
type InsufficientPaymentError struct {
	Required float64
	Provided float64
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment: required %.2f, provided %.2f", e.Required, e.Provided)
}

// LineInput is one requested (menu item, quantity) pairing
type LineInput struct {
	MenuItemID uint
	Quantity   int
}

// OrderInput is everything the register sends to ring up a sale
type OrderInput struct {
	CustomerName string
	OrderType    models.OrderType
	TableNumber  *string
	Items        []LineInput
	AmountPaid   float64
}

// Engine prices and persists orders. It holds the store handle it was
// constructed with; nothing here is global.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// CreateOrder resolves each line against the live menu, snapshots name and
// price, computes subtotal/tax/total, validates the tendered amount and
// persists the order with all its items in a single transaction. Either the
// whole ticket lands or none of it does.
func (e *Engine) CreateOrder(input OrderInput, createdBy uint) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	var order models.Order

	err := e.db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		var subtotal float64

		for _, line := range input.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ItemUnavailableError{MenuItemID: line.MenuItemID}
				}
				return err
			}
			if !menuItem.IsAvailable {
				return &ItemUnavailableError{MenuItemID: menuItem.ID, Name: menuItem.Name}
			}

			lineTotal := Round2(menuItem.Price * float64(line.Quantity))
			subtotal += lineTotal
			items = append(items, models.OrderItem{
				MenuItemID:    menuItem.ID,
				MenuItemName:  menuItem.Name,
				MenuItemPrice: menuItem.Price,
				Quantity:      line.Quantity,
				LineTotal:     lineTotal,
			})
		}

		subtotal = Round2(subtotal)
		tax := Round2(subtotal * TaxRate)
		total := Round2(subtotal + tax)

		if input.AmountPaid < total {
			return &InsufficientPaymentError{Required: total, Provided: input.AmountPaid}
		}
		change := Round2(input.AmountPaid - total)
		if change < 0 {
			change = 0
		}

		order = models.Order{
			CustomerName: input.CustomerName,
			OrderType:    input.OrderType,
			TableNumber:  input.TableNumber,
			Subtotal:     subtotal,
			Tax:          tax,
			Total:        total,
			AmountPaid:   input.AmountPaid,
			ChangeAmount: change,
			CreatedBy:    createdBy,
			Items:        items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Number the order from its own row id, inside the same transaction
		order.OrderNumber = fmt.Sprintf("ORDR#%06d", order.ID)
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("order_number", order.OrderNumber).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
