package shopControllers

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

func TestPayPendingOrderCreatesPaymentAndShipment(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "total", "shipping_method_id"}).
			AddRow(7, "pending", "25.00", 3))
	mock.ExpectExec(`UPDATE "orders" SET "status"=`).
		WithArgs("paid", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "shipping_methods"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cost", "lead_time_days"}).
			AddRow(3, "Economy", "2.50", 3))
	mock.ExpectQuery(`INSERT INTO "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	shipment, err := Pay(db, PayRequest{OrderID: 7, Method: "Tarjeta"})
	require.NoError(t, err)

	assert.Equal(t, uint(7), shipment.OrderID)
	assert.Equal(t, models.ShipmentStatusPreparing, shipment.Status)
	assert.True(t, strings.HasPrefix(shipment.TrackingCode, "TRK-"))
	// 3-day lead time on the method
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), shipment.EstimatedDelivery, time.Minute)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayOrderNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "total", "shipping_method_id"}))
	mock.ExpectRollback()

	_, err := Pay(db, PayRequest{OrderID: 99, Method: "card"})
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second pay call sees the paid status inside the transaction and writes
// nothing: no second payment, no second shipment.
func TestPayAlreadyPaidOrder(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "total", "shipping_method_id"}).
			AddRow(7, "paid", "25.00", 3))
	mock.ExpectRollback()

	_, err := Pay(db, PayRequest{OrderID: 7, Method: "card"})
	assert.ErrorIs(t, err, models.ErrOrderNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayInvalidMethod(t *testing.T) {
	db, mock := newTestDB(t)

	_, err := Pay(db, PayRequest{OrderID: 7, Method: "barter"})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Shipment insert failing must also roll back the status transition and the
// payment row.
func TestPayShipmentFailureRollsBackEverything(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "total", "shipping_method_id"}).
			AddRow(7, "pending", "25.00", 3))
	mock.ExpectExec(`UPDATE "orders" SET "status"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "shipping_methods"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cost", "lead_time_days"}).
			AddRow(3, "Economy", "2.50", 3))
	mock.ExpectQuery(`INSERT INTO "shipments"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := Pay(db, PayRequest{OrderID: 7, Method: "card"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
