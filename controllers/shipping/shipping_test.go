package shippingControllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUpdateShipmentStatusSyncsOrder(t *testing.T) {
	cases := []struct {
		name       string
		status     models.ShipmentStatus
		wantsOrder models.OrderStatus
	}{
		{"preparing keeps order paid", models.ShipmentStatusPreparing, models.OrderStatusPaid},
		{"in transit marks order shipped", models.ShipmentStatusInTransit, models.OrderStatusShipped},
		{"delivered marks order delivered", models.ShipmentStatusDelivered, models.OrderStatusDelivered},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)

			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "shipments" SET "status"=`).
				WithArgs(string(tc.status), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}).
					AddRow(4, 7, string(tc.status)))
			mock.ExpectExec(`UPDATE "orders" SET "status"=`).
				WithArgs(string(tc.wantsOrder), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := UpdateShipmentStatus(db, 4, tc.status)
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateShipmentStatusNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "shipments" SET "status"=`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}))
	mock.ExpectRollback()

	err := UpdateShipmentStatus(db, 999, models.ShipmentStatusInTransit)
	assert.ErrorIs(t, err, models.ErrShipmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The shipment write must not survive a failed order sync.
func TestUpdateShipmentStatusOrderSyncFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "shipments" SET "status"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}).
			AddRow(4, 7, "in_transit"))
	mock.ExpectExec(`UPDATE "orders" SET "status"=`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := UpdateShipmentStatus(db, 4, models.ShipmentStatusInTransit)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
