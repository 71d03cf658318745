package shopControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	salesControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/sales"
	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

type CheckoutItem struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

type CheckoutRequest struct {
	UserID           uint           `json:"user_id" binding:"required"`
	AddressID        uint           `json:"address_id" binding:"required"`
	ShippingMethodID uint           `json:"shipping_method_id" binding:"required"`
	ContactName      string         `json:"contact_name"`
	ContactPhone     string         `json:"contact_phone"`
	ContactEmail     string         `json:"contact_email"`
	Items            []CheckoutItem `json:"items"`
}

// Checkout creates a pending order: line-item snapshots, subtotal/total from
// the submitted cart, and a conditional stock decrement per item. Everything
// runs in one transaction; any failure rolls back every partial write,
// including decrements already applied in the loop.
func Checkout(db *gorm.DB, req CheckoutRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var method models.ShippingMethod
		if err := tx.First(&method, "id = ?", req.ShippingMethodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrInvalidShippingMethod
			}
			return err
		}

		subtotal := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			subtotal = subtotal.Add(line)
			items = append(items, models.OrderItem{
				ProductID:   it.ProductID,
				ProductName: it.Name,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Subtotal:    line,
			})
		}

		order = models.Order{
			UserID:           req.UserID,
			AddressID:        req.AddressID,
			ShippingMethodID: req.ShippingMethodID,
			Status:           models.OrderStatusPending,
			ContactName:      req.ContactName,
			ContactPhone:     req.ContactPhone,
			ContactEmail:     req.ContactEmail,
			Subtotal:         subtotal,
			ShippingCost:     method.Cost,
			Total:            subtotal.Add(method.Cost),
			CreatedAt:        time.Now(),
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		// Stock never goes negative: the decrement only lands when enough
		// stock remains, otherwise the whole checkout rolls back.
		for _, it := range req.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", it.ProductID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %d", models.ErrInsufficientStock, it.ProductID)
			}
		}

		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /api/shop/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := Checkout(db, req)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmptyCart),
				errors.Is(err, models.ErrInvalidShippingMethod):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process the purchase"})
			}
			return
		}

		salesControllers.BroadcastOrderEvent(salesControllers.OrderEvent{
			Type:    "order_created",
			OrderID: order.ID,
		})

		c.JSON(http.StatusOK, gin.H{
			"message":  "order created successfully",
			"order_id": order.ID,
			"total":    order.Total,
		})
	}
}
