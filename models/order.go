package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Legacy admin clients key orders by the numeric codes the old schema
// persisted, so the enum keeps an explicit bidirectional mapping.
var orderStatusCodes = map[OrderStatus]int{
	OrderStatusPending:   1,
	OrderStatusPaid:      2,
	OrderStatusShipped:   3,
	OrderStatusDelivered: 4,
	OrderStatusCancelled: 5,
}

var orderStatusByCode = func() map[int]OrderStatus {
	m := make(map[int]OrderStatus, len(orderStatusCodes))
	for s, c := range orderStatusCodes {
		m[c] = s
	}
	return m
}()

var ErrInvalidStatus = errors.New("invalid status")

func (s OrderStatus) Code() int { return orderStatusCodes[s] }

func OrderStatusFromCode(code int) (OrderStatus, error) {
	s, ok := orderStatusByCode[code]
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(raw))
	if _, ok := orderStatusCodes[s]; !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

type Order struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           uint            `gorm:"index;not null" json:"user_id"`
	User             *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AddressID        uint            `json:"address_id"`
	Address          *Address        `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	ShippingMethodID uint            `json:"shipping_method_id"`
	ShippingMethod   *ShippingMethod `gorm:"foreignKey:ShippingMethodID" json:"shipping_method,omitempty"`
	Status           OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	// Contact snapshot taken at checkout, deliberately decoupled from the
	// live user record.
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`

	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping_cost"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Shipment  *Shipment   `gorm:"foreignKey:OrderID" json:"shipment,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is an immutable snapshot of one purchased product. Catalog edits
// after checkout must never alter it.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index;not null" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
