package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch strings.ToLower(raw) {
	case string(PaymentMethodCard), "tarjeta":
		return PaymentMethodCard, nil
	case string(PaymentMethodCash), "efectivo":
		return PaymentMethodCash, nil
	default:
		return "", ErrInvalidStatus
	}
}

type PaymentStatus string

const (
	// The simulator has no decline path; every recorded payment completes.
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderID        uint            `gorm:"index;not null" json:"order_id"`
	Method         PaymentMethod   `gorm:"type:VARCHAR(20);not null" json:"method"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status         PaymentStatus   `gorm:"type:VARCHAR(20);default:'completed'" json:"status"`
	TransactionRef string          `gorm:"uniqueIndex;not null" json:"transaction_ref"`
	CreatedAt      time.Time       `json:"created_at"`
}
