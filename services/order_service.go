package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mauz21/Heat-box/entity"
	"github.com/mauz21/Heat-box/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusConfirmed is the fixed status for freshly placed orders. The
// tracking stage sequence starts later, at "pending".
const StatusConfirmed = "confirmed"

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, productRepo *repository.ProductRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, ProductRepo: productRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type OrderDraft struct {
	DeliveryAddress entity.DeliveryAddress `json:"deliveryAddress" binding:"required"`
}

type CreateOrderReq struct {
	Order OrderDraft    `json:"order" binding:"required"`
	Items []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderRes struct {
	ID          uint   `json:"id"`
	TotalAmount string `json:"totalAmount"`
	Status      string `json:"status"`
}

// ----- Create -----

// Create re-prices every line against the current catalog, freezes the
// per-unit price on each item row and writes header + items in one
// transaction. A missing product fails the whole order before any write.
func (s *OrderService) Create(userID *uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	type line struct {
		productID uint
		quantity  int
		unitPrice decimal.Decimal
	}

	total := decimal.Zero
	lines := make([]line, 0, len(req.Items))
	for _, it := range req.Items {
		p, err := s.ProductRepo.GetBasics(it.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", it.ProductID, ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		lines = append(lines, line{productID: p.ID, quantity: it.Quantity, unitPrice: p.Price})
	}
	total = total.Round(2)

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Status:          StatusConfirmed,
			TotalAmount:     total,
			DeliveryAddress: req.Order.DeliveryAddress,
			UserID:          userID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:     order.ID,
				ProductID:   l.productID,
				Quantity:    l.quantity,
				PriceAtTime: l.unitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, TotalAmount: total.StringFixed(2), Status: order.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Detail -----

type OrderDetail struct {
	ID              uint                   `json:"id"`
	Status          string                 `json:"status"`
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	DeliveryAddress entity.DeliveryAddress `json:"deliveryAddress"`
	CreatedAt       time.Time              `json:"createdAt"`
	Items           []entity.OrderItem     `json:"items"`
	Progress        StatusProgress         `json:"progress"`
}

// Detail returns the header with its items, each item carrying the
// product's current display row. The header total stays frozen even when
// catalog prices drifted since checkout.
func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		ID:              o.ID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       o.CreatedAt,
		Items:           items,
		Progress:        ProjectStatus(o.Status),
	}, nil
}
