package clientControllers

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

func editRequest() EditOrderRequest {
	return EditOrderRequest{
		ContactName:  "Ana Torres",
		ContactPhone: "999111222",
		ContactEmail: "ana@example.com",
	}
}

func TestEditOrderBeforeShipmentExists(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}))
	mock.ExpectExec(`UPDATE "orders" SET `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := UpdateOrderContact(db, 7, editRequest())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditOrderWhileShipmentPreparing(t *testing.T) {
	db, mock := newTestDB(t)

	req := editRequest()
	req.AddressID = 2
	req.Address = &AddressPatch{Line1: "Av. Arequipa 123", City: "Lima", PostalCode: "15046", Reference: "Blue gate"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}).
			AddRow(4, 7, "preparing"))
	mock.ExpectExec(`UPDATE "orders" SET `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "addresses" SET `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := UpdateOrderContact(db, 7, req)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Once the shipment is on its way, the guard refuses before any write.
func TestEditOrderLockedInTransit(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}).
			AddRow(4, 7, "in_transit"))
	mock.ExpectRollback()

	err := UpdateOrderContact(db, 7, editRequest())
	assert.ErrorIs(t, err, models.ErrOrderLocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditOrderLockedDelivered(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}).
			AddRow(4, 7, "delivered"))
	mock.ExpectRollback()

	err := UpdateOrderContact(db, 7, editRequest())
	assert.ErrorIs(t, err, models.ErrOrderLocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditOrderNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}))
	mock.ExpectExec(`UPDATE "orders" SET `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := UpdateOrderContact(db, 404, editRequest())
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Address write failing rolls the contact update back too.
func TestEditOrderAddressFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)

	req := editRequest()
	req.AddressID = 2
	req.Address = &AddressPatch{Line1: "Av. Arequipa 123"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "shipments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status"}))
	mock.ExpectExec(`UPDATE "orders" SET `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "addresses" SET `).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := UpdateOrderContact(db, 7, req)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
