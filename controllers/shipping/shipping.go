package shippingControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

// ShipmentRow is the admin view of one shipment joined with its order,
// customer and destination.
type ShipmentRow struct {
	ShipmentID        uint   `json:"shipment_id"`
	TrackingCode      string `json:"tracking_code"`
	Status            string `json:"status"`
	DispatchedAt      string `json:"dispatched_at"`
	EstimatedDelivery string `json:"estimated_delivery"`
	OrderID           uint   `json:"order_id"`
	Customer          string `json:"customer"`
	ShippingMethod    string `json:"shipping_method"`
	Address           string `json:"address"`
}

// GET /api/shipping — every shipment, latest dispatch first.
func GetAllShipmentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []ShipmentRow
		err := db.Model(&models.Shipment{}).
			Select(`shipments.id AS shipment_id,
				shipments.tracking_code,
				shipments.status,
				shipments.dispatched_at,
				shipments.estimated_delivery,
				orders.id AS order_id,
				users.first_name || ' ' || users.last_name AS customer,
				shipping_methods.name AS shipping_method,
				addresses.line1 || ', ' || addresses.city AS address`).
			Joins("JOIN orders ON orders.id = shipments.order_id").
			Joins("JOIN users ON users.id = orders.user_id").
			Joins("JOIN shipping_methods ON shipping_methods.id = orders.shipping_method_id").
			Joins("JOIN addresses ON addresses.id = orders.address_id").
			Order("shipments.dispatched_at DESC").
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shipments"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// UpdateShipmentStatus writes the shipment status and the mapped order status
// in the same transaction. Partial sync never persists: if the defensive
// re-read misses or the order write fails, the shipment write rolls back too.
func UpdateShipmentStatus(db *gorm.DB, shipmentID uint, status models.ShipmentStatus) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Shipment{}).
			Where("id = ?", shipmentID).
			Update("status", status).Error; err != nil {
			return err
		}

		var shipment models.Shipment
		if err := tx.First(&shipment, "id = ?", shipmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrShipmentNotFound
			}
			return err
		}

		return tx.Model(&models.Order{}).
			Where("id = ?", shipment.OrderID).
			Update("status", status.OrderStatus()).Error
	})
}

type updateShipmentRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/shipping/:shipmentID
func UpdateShipmentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shipmentID, err := strconv.ParseUint(c.Param("shipmentID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shipmentID must be numeric"})
			return
		}

		var req updateShipmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseShipmentStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment status"})
			return
		}

		if err := UpdateShipmentStatus(db, uint(shipmentID), status); err != nil {
			if errors.Is(err, models.ErrShipmentNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update shipment status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "shipment status updated"})
	}
}
