package shopControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	salesControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/sales"
	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

type PayRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Method  string `json:"method" binding:"required"`
}

func generateTransactionRef() string {
	return "TXN-" + uuid.NewString()
}

func generateTrackingCode() string {
	return "TRK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// Pay records a payment against a pending order and creates its shipment.
// The order row is read FOR UPDATE so concurrent attempts serialize: the
// second one sees a non-pending status and fails without writing anything.
// Status transition, payment insert and shipment insert are all-or-nothing.
func Pay(db *gorm.DB, req PayRequest) (*models.Shipment, error) {
	method, err := models.ParsePaymentMethod(req.Method)
	if err != nil {
		return nil, err
	}

	var shipment models.Shipment
	err = db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrOrderNotFound
			}
			return err
		}
		if order.Status != models.OrderStatusPending {
			return models.ErrOrderNotPending
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusPaid).Error; err != nil {
			return err
		}

		payment := models.Payment{
			OrderID:        order.ID,
			Method:         method,
			Amount:         order.Total,
			Status:         models.PaymentStatusCompleted,
			TransactionRef: generateTransactionRef(),
			CreatedAt:      time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		var shippingMethod models.ShippingMethod
		if err := tx.First(&shippingMethod, "id = ?", order.ShippingMethodID).Error; err != nil {
			return err
		}

		dispatched := time.Now()
		shipment = models.Shipment{
			OrderID:           order.ID,
			TrackingCode:      generateTrackingCode(),
			Status:            models.ShipmentStatusPreparing,
			DispatchedAt:      dispatched,
			EstimatedDelivery: dispatched.AddDate(0, 0, shippingMethod.LeadTimeDays),
		}
		return tx.Create(&shipment).Error
	})
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

// POST /api/shop/pay
func PayHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		shipment, err := Pay(db, req)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrOrderNotPending):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process the payment"})
			}
			return
		}

		salesControllers.BroadcastOrderEvent(salesControllers.OrderEvent{
			Type:     "order_paid",
			OrderID:  shipment.OrderID,
			Tracking: shipment.TrackingCode,
		})

		c.JSON(http.StatusOK, gin.H{
			"message":            "payment completed, shipment created",
			"tracking":           shipment.TrackingCode,
			"estimated_delivery": shipment.EstimatedDelivery,
		})
	}
}
