package pricing

import (
	"testing"

	"pos-backend-api/database"
	"pos-backend-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	return db
}

func seedMenu(t *testing.T, db *gorm.DB) (burger, coffee, discontinued models.MenuItem) {
	t.Helper()
	burger = models.MenuItem{Name: "Burger", Category: models.CategoryFood, Price: 10.00, IsAvailable: true}
	coffee = models.MenuItem{Name: "Coffee", Category: models.CategoryBeverages, Price: 5.00, IsAvailable: true}
	discontinued = models.MenuItem{Name: "Old Special", Category: models.CategoryFood, Price: 7.00, IsAvailable: false}
	require.NoError(t, db.Create(&burger).Error)
	require.NoError(t, db.Create(&coffee).Error)
	require.NoError(t, db.Create(&discontinued).Error)
	return burger, coffee, discontinued
}

func TestCreateOrder_Totals(t *testing.T) {
	db := newTestDB(t)
	burger, coffee, _ := seedMenu(t, db)
	engine := NewEngine(db)

	order, err := engine.CreateOrder(OrderInput{
		CustomerName: "Walk-in",
		OrderType:    models.TypeDineIn,
		Items: []LineInput{
			{MenuItemID: burger.ID, Quantity: 2},
			{MenuItemID: coffee.ID, Quantity: 1},
		},
		AmountPaid: 30.00,
	}, 1)
	require.NoError(t, err)

	assert.InDelta(t, 25.00, order.Subtotal, 0.001)
	assert.InDelta(t, 1.25, order.Tax, 0.001)
	assert.InDelta(t, 26.25, order.Total, 0.001)
	assert.InDelta(t, 3.75, order.ChangeAmount, 0.001)
	assert.Equal(t, uint(1), order.CreatedBy)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 20.00, order.Items[0].LineTotal, 0.001)
	assert.InDelta(t, 5.00, order.Items[1].LineTotal, 0.001)
}

func TestCreateOrder_SnapshotsNameAndPrice(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedMenu(t, db)
	engine := NewEngine(db)

	order, err := engine.CreateOrder(OrderInput{
		CustomerName: "Walk-in",
		OrderType:    models.TypeTakeAway,
		Items:        []LineInput{{MenuItemID: burger.ID, Quantity: 1}},
		AmountPaid:   20.00,
	}, 1)
	require.NoError(t, err)

	// Edit the menu after the sale; the stored snapshot must not move
	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", burger.ID).
		Updates(map[string]interface{}{"name": "Mega Burger", "price": 99.0}).Error)

	var stored models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, "Burger", stored.MenuItemName)
	assert.InDelta(t, 10.00, stored.MenuItemPrice, 0.001)
}

func TestCreateOrder_InsufficientPayment(t *testing.T) {
	db := newTestDB(t)
	burger, coffee, _ := seedMenu(t, db)
	engine := NewEngine(db)

	_, err := engine.CreateOrder(OrderInput{
		CustomerName: "Walk-in",
		OrderType:    models.TypeDineIn,
		Items: []LineInput{
			{MenuItemID: burger.ID, Quantity: 2},
			{MenuItemID: coffee.ID, Quantity: 1},
		},
		AmountPaid: 20.00,
	}, 1)

	var short *InsufficientPaymentError
	require.ErrorAs(t, err, &short)
	assert.InDelta(t, 26.25, short.Required, 0.001)
	assert.InDelta(t, 20.00, short.Provided, 0.001)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count, "a rejected order must leave no rows behind")
}

func TestCreateOrder_ExactPaymentZeroChange(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedMenu(t, db)
	engine := NewEngine(db)

	order, err := engine.CreateOrder(OrderInput{
		CustomerName: "Walk-in",
		OrderType:    models.TypeDineIn,
		Items:        []LineInput{{MenuItemID: burger.ID, Quantity: 1}},
		AmountPaid:   10.50,
	}, 1)
	require.NoError(t, err)
	assert.Zero(t, order.ChangeAmount)
}

func TestCreateOrder_UnavailableItemLeavesNothingBehind(t *testing.T) {
	db := newTestDB(t)
	burger, _, discontinued := seedMenu(t, db)
	engine := NewEngine(db)

	_, err := engine.CreateOrder(OrderInput{
		CustomerName: "Walk-in",
		OrderType:    models.TypeDineIn,
		Items: []LineInput{
			{MenuItemID: burger.ID, Quantity: 1},
			{MenuItemID: discontinued.ID, Quantity: 1},
		},
		AmountPaid: 100.00,
	}, 1)

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Old Special", unavailable.Name)

	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items, "no partial order may be visible after a failed create")
}

func TestCreateOrder_UnknownItem(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db)
	engine := NewEngine(db)

	_, err := engine.CreateOrder(OrderInput{
		CustomerName: "Walk-in",
		OrderType:    models.TypeDineIn,
		Items:        []LineInput{{MenuItemID: 9999, Quantity: 1}},
		AmountPaid:   100.00,
	}, 1)

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, uint(9999), unavailable.MenuItemID)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db)

	_, err := engine.CreateOrder(OrderInput{
		CustomerName: "Walk-in",
		OrderType:    models.TypeDineIn,
		AmountPaid:   10.00,
	}, 1)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestCreateOrder_OrderNumberFromRowID(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedMenu(t, db)
	engine := NewEngine(db)

	first, err := engine.CreateOrder(OrderInput{
		CustomerName: "A",
		OrderType:    models.TypeDineIn,
		Items:        []LineInput{{MenuItemID: burger.ID, Quantity: 1}},
		AmountPaid:   20.00,
	}, 1)
	require.NoError(t, err)
	second, err := engine.CreateOrder(OrderInput{
		CustomerName: "B",
		OrderType:    models.TypeTakeAway,
		Items:        []LineInput{{MenuItemID: burger.ID, Quantity: 1}},
		AmountPaid:   20.00,
	}, 1)
	require.NoError(t, err)

	assert.Regexp(t, `^ORDR#\d{6}$`, first.OrderNumber)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)

	// The number persisted, not just the returned struct
	var stored models.Order
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.Equal(t, first.OrderNumber, stored.OrderNumber)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.25, Round2(1.2501))
	assert.Equal(t, 1.26, Round2(1.2599))
	assert.Equal(t, 3.33, Round2(10.0/3))
	assert.Equal(t, 0.0, Round2(0.001))
}

func TestCreateOrder_TaxMatchesRate(t *testing.T) {
	db := newTestDB(t)
	_, coffee, _ := seedMenu(t, db)
	engine := NewEngine(db)

	for qty := 1; qty <= 5; qty++ {
		order, err := engine.CreateOrder(OrderInput{
			CustomerName: "Walk-in",
			OrderType:    models.TypeDineIn,
			Items:        []LineInput{{MenuItemID: coffee.ID, Quantity: qty}},
			AmountPaid:   1000,
		}, 1)
		require.NoError(t, err)
		assert.InDelta(t, Round2(order.Subtotal*TaxRate), order.Tax, 0.001)
		assert.InDelta(t, order.Subtotal+order.Tax, order.Total, 0.001)
		assert.GreaterOrEqual(t, order.ChangeAmount, 0.0)
	}
}
