package salesControllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be numeric"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/sales — every order with customer, address and item snapshots.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Address").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CancelOrder marks the order cancelled and deletes its shipment in one
// transaction. Delivered orders are terminal and stay untouched. Stock
// restoration is policy, not a given: the original flow never restored it,
// so it only happens when restoreStock is set.
func CancelOrder(db *gorm.DB, orderID uint, restoreStock bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status <> ?", orderID, models.OrderStatusDelivered).
			Update("status", models.OrderStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var order models.Order
			if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrOrderNotFound
				}
				return err
			}
			return models.ErrOrderNotCancellable
		}

		if err := tx.Where("order_id = ?", orderID).
			Delete(&models.Shipment{}).Error; err != nil {
			return err
		}

		if restoreStock {
			var items []models.OrderItem
			if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
				return err
			}
			for _, it := range items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", it.ProductID).
					UpdateColumn("stock", gorm.Expr("stock + ?", it.Quantity)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// RestoreStockOnCancel reports whether cancellation should put purchased
// quantities back into the catalog.
func RestoreStockOnCancel() bool {
	return os.Getenv("RESTORE_STOCK_ON_CANCEL") == "true"
}

// PUT /api/sales/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "orderID")
		if !ok {
			return
		}

		if err := CancelOrder(db, orderID, RestoreStockOnCancel()); err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrOrderNotCancellable):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
			}
			return
		}

		BroadcastOrderEvent(OrderEvent{Type: "order_cancelled", OrderID: orderID})
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled, shipment removed"})
	}
}

// DELETE /api/sales/:orderID — admin cleanup only.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "orderID")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", orderID).Delete(&models.Shipment{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}
