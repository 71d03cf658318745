package models

import (
	"strings"
	"time"
)

type ShipmentStatus string

const (
	ShipmentStatusPreparing ShipmentStatus = "preparing"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
)

func ParseShipmentStatus(raw string) (ShipmentStatus, error) {
	switch strings.ToLower(raw) {
	case string(ShipmentStatusPreparing), "preparando":
		return ShipmentStatusPreparing, nil
	case string(ShipmentStatusInTransit), "en camino":
		return ShipmentStatusInTransit, nil
	case string(ShipmentStatusDelivered), "entregado":
		return ShipmentStatusDelivered, nil
	default:
		return "", ErrInvalidStatus
	}
}

// OrderStatus maps a shipment state to the order state it implies. The
// shipment tracker applies this mapping in the same transaction as the
// shipment write so the two never diverge.
func (s ShipmentStatus) OrderStatus() OrderStatus {
	switch s {
	case ShipmentStatusInTransit:
		return OrderStatusShipped
	case ShipmentStatusDelivered:
		return OrderStatusDelivered
	default:
		return OrderStatusPaid
	}
}

type Shipment struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	OrderID           uint           `gorm:"uniqueIndex;not null" json:"order_id"`
	TrackingCode      string         `gorm:"uniqueIndex;not null" json:"tracking_code"`
	Status            ShipmentStatus `gorm:"type:VARCHAR(20);default:'preparing'" json:"status"`
	DispatchedAt      time.Time      `json:"dispatched_at"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
}
