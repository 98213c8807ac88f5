package services

import (
	"path/filepath"
	"testing"

	"github.com/mauz21/Heat-box/entity"
	"github.com/mauz21/Heat-box/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Reservation{},
		&entity.Location{},
		&entity.LoyaltyAccount{},
	))
	return db
}

// same rows the startup seed inserts
func seedProducts(t *testing.T, db *gorm.DB) []entity.Product {
	t.Helper()
	products := []entity.Product{
		{Name: "Diamond Crust Pizza", Price: decimal.RequireFromString("1850.00"), Category: "Pizzas", SpicyLevel: 2, IsPopular: true},
		{Name: "Zinger Burger", Price: decimal.RequireFromString("650.00"), Category: "Burgers", SpicyLevel: 1, IsPopular: true},
		{Name: "Atomic Wings", Price: decimal.RequireFromString("950.00"), Category: "Wings", SpicyLevel: 3, IsPopular: true},
		{Name: "Veggie Delight", Price: decimal.RequireFromString("1450.00"), Category: "Pizzas", SpicyLevel: 0, IsVegetarian: true},
	}
	require.NoError(t, db.Create(&products).Error)
	return products
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewProductRepository(db))
}

func testAddress() entity.DeliveryAddress {
	return entity.DeliveryAddress{Street: "123 Test St", City: "Food City"}
}

func TestCreateOrder_TotalAndSnapshot(t *testing.T) {
	db := setupDB(t)
	products := seedProducts(t, db)
	svc := newOrderService(db)

	out, err := svc.Create(nil, &CreateOrderReq{
		Order: OrderDraft{DeliveryAddress: testAddress()},
		Items: []OrderItemIn{{ProductID: products[1].ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, "1300.00", out.TotalAmount)
	require.Equal(t, StatusConfirmed, out.Status)

	var items []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", out.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
	require.True(t, items[0].PriceAtTime.Equal(decimal.RequireFromString("650.00")),
		"priceAtTime = %s", items[0].PriceAtTime)
}

func TestCreateOrder_MultiLineTotal(t *testing.T) {
	db := setupDB(t)
	products := seedProducts(t, db)
	svc := newOrderService(db)

	// 1850.00 + 2*950.00 + 3*650.00 = 5700.00
	out, err := svc.Create(nil, &CreateOrderReq{
		Order: OrderDraft{DeliveryAddress: testAddress()},
		Items: []OrderItemIn{
			{ProductID: products[0].ID, Quantity: 1},
			{ProductID: products[2].ID, Quantity: 2},
			{ProductID: products[1].ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "5700.00", out.TotalAmount)

	detail, err := svc.Detail(out.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 3)
}

func TestCreateOrder_MissingProductPersistsNothing(t *testing.T) {
	db := setupDB(t)
	products := seedProducts(t, db)
	svc := newOrderService(db)

	_, err := svc.Create(nil, &CreateOrderReq{
		Order: OrderDraft{DeliveryAddress: testAddress()},
		Items: []OrderItemIn{
			{ProductID: products[0].ID, Quantity: 1},
			{ProductID: 9999, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "9999")

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)
}

func TestCreateOrder_ItemInsertFailureRollsBackHeader(t *testing.T) {
	db := setupDB(t)
	products := seedProducts(t, db)
	svc := newOrderService(db)

	// make the item insert fail after the header insert succeeded
	require.NoError(t, db.Migrator().DropTable(&entity.OrderItem{}))

	_, err := svc.Create(nil, &CreateOrderReq{
		Order: OrderDraft{DeliveryAddress: testAddress()},
		Items: []OrderItemIn{{ProductID: products[0].ID, Quantity: 1}},
	})
	require.Error(t, err)

	// header rolled back with the items: all-or-nothing
	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.Zero(t, orders)
}

func TestCreateOrder_AttachesUser(t *testing.T) {
	db := setupDB(t)
	products := seedProducts(t, db)
	svc := newOrderService(db)

	user := entity.User{Email: "jo@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	out, err := svc.Create(&user.ID, &CreateOrderReq{
		Order: OrderDraft{DeliveryAddress: testAddress()},
		Items: []OrderItemIn{{ProductID: products[1].ID, Quantity: 1}},
	})
	require.NoError(t, err)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	require.NotNil(t, o.UserID)
	require.Equal(t, user.ID, *o.UserID)
}

func TestDetail_FrozenTotalLiveDisplay(t *testing.T) {
	db := setupDB(t)
	products := seedProducts(t, db)
	svc := newOrderService(db)

	out, err := svc.Create(nil, &CreateOrderReq{
		Order: OrderDraft{DeliveryAddress: testAddress()},
		Items: []OrderItemIn{{ProductID: products[1].ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// catalog price changes after checkout
	newPrice := decimal.RequireFromString("700.00")
	require.NoError(t, db.Model(&entity.Product{}).
		Where("id = ?", products[1].ID).
		Update("price", newPrice).Error)

	detail, err := svc.Detail(out.ID)
	require.NoError(t, err)

	// header total and item snapshot stay frozen
	require.True(t, detail.TotalAmount.Equal(decimal.RequireFromString("1300.00")))
	require.Len(t, detail.Items, 1)
	require.True(t, detail.Items[0].PriceAtTime.Equal(decimal.RequireFromString("650.00")))

	// the joined product row shows the current price
	require.True(t, detail.Items[0].Product.Price.Equal(newPrice))
}

func TestDetail_NotFound(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	_, err := svc.Detail(42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDetail_ProgressOfFreshOrder(t *testing.T) {
	db := setupDB(t)
	products := seedProducts(t, db)
	svc := newOrderService(db)

	out, err := svc.Create(nil, &CreateOrderReq{
		Order: OrderDraft{DeliveryAddress: testAddress()},
		Items: []OrderItemIn{{ProductID: products[0].ID, Quantity: 1}},
	})
	require.NoError(t, err)

	detail, err := svc.Detail(out.ID)
	require.NoError(t, err)

	// "confirmed" is not a tracking stage, so no progress yet
	require.Equal(t, -1, detail.Progress.Stage)
	require.Zero(t, detail.Progress.Fraction)
}
