package clientControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

// GET /api/client/orders/:userID — full purchase history, newest first.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Shipment").
			Preload("Address").
			Preload("ShippingMethod").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order history"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type AddressPatch struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Reference  string `json:"reference"`
}

type EditOrderRequest struct {
	ContactName  string        `json:"contact_name" binding:"required"`
	ContactPhone string        `json:"contact_phone"`
	ContactEmail string        `json:"contact_email"`
	AddressID    uint          `json:"address_id"`
	Address      *AddressPatch `json:"address"`
}

// UpdateOrderContact changes the contact snapshot and, optionally, the
// referenced address. The edit guard reads the shipment inside the same
// transaction: once it has left "preparing", nothing is written.
func UpdateOrderContact(db *gorm.DB, orderID uint, req EditOrderRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var shipment models.Shipment
		err := tx.First(&shipment, "order_id = ?", orderID).Error
		switch {
		case err == nil:
			if shipment.Status != models.ShipmentStatusPreparing {
				return models.ErrOrderLocked
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No shipment yet, the order is still editable.
		default:
			return err
		}

		res := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
			"contact_name":  req.ContactName,
			"contact_phone": req.ContactPhone,
			"contact_email": req.ContactEmail,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrOrderNotFound
		}

		if req.AddressID != 0 && req.Address != nil {
			if err := tx.Model(&models.Address{}).Where("id = ?", req.AddressID).Updates(map[string]interface{}{
				"line1":       req.Address.Line1,
				"city":        req.Address.City,
				"postal_code": req.Address.PostalCode,
				"reference":   req.Address.Reference,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PUT /api/client/orders/:orderID
func UpdateOrderContactHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID must be numeric"})
			return
		}

		var req EditOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := UpdateOrderContact(db, uint(orderID), req); err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrOrderLocked):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update delivery data"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "delivery data updated"})
	}
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password"`
}

// PUT /api/client/profile/:userID
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")

		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"phone":      req.Phone,
			"email":      req.Email,
		}
		if strings.TrimSpace(req.Password) != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
				return
			}
			updates["password_hash"] = string(hash)
		}

		if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
				c.JSON(http.StatusConflict, gin.H{"error": models.ErrDuplicateEmail.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
	}
}
