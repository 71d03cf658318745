package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusCodesRoundTrip(t *testing.T) {
	for status, code := range orderStatusCodes {
		got, err := OrderStatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, status, got)
		assert.Equal(t, code, status.Code())
	}

	_, err := OrderStatusFromCode(42)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("Cancelled")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, s)

	_, err = ParseOrderStatus("returned")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseShipmentStatusAcceptsLegacyLabels(t *testing.T) {
	cases := map[string]ShipmentStatus{
		"preparing":  ShipmentStatusPreparing,
		"Preparando": ShipmentStatusPreparing,
		"in_transit": ShipmentStatusInTransit,
		"En Camino":  ShipmentStatusInTransit,
		"delivered":  ShipmentStatusDelivered,
		"Entregado":  ShipmentStatusDelivered,
	}
	for raw, want := range cases {
		got, err := ParseShipmentStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseShipmentStatus("lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestShipmentStatusOrderMapping(t *testing.T) {
	assert.Equal(t, OrderStatusPaid, ShipmentStatusPreparing.OrderStatus())
	assert.Equal(t, OrderStatusShipped, ShipmentStatusInTransit.OrderStatus())
	assert.Equal(t, OrderStatusDelivered, ShipmentStatusDelivered.OrderStatus())
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("Tarjeta")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodCard, m)

	_, err = ParsePaymentMethod("barter")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
