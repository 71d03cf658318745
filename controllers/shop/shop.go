package shopControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

// GET /api/shop/products — public catalog: active products with stock.
func GetCatalogHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").
			Where("status = ? AND stock > 0", models.ProductStatusActive).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/shop/shipping-methods
func GetShippingMethodsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var methods []models.ShippingMethod
		if err := db.Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shipping methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// GET /api/shop/orders/:orderID
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("ShippingMethod").
			Preload("Shipment").
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
