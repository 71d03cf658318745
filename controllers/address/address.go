package addressControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

// GET /api/addresses/:userID — principal first.
func GetUserAddressesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.Address
		if err := db.
			Where("user_id = ?", c.Param("userID")).
			Order("is_principal DESC, id DESC").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

type addressInput struct {
	UserID     uint   `json:"user_id" binding:"required"`
	Alias      string `json:"alias"`
	Line1      string `json:"line1" binding:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Reference  string `json:"reference"`
}

// POST /api/addresses — a user's first address becomes the principal one.
func CreateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var count int64
		if err := db.Model(&models.Address{}).Where("user_id = ?", req.UserID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save address"})
			return
		}

		address := models.Address{
			UserID:      req.UserID,
			Alias:       req.Alias,
			Line1:       req.Line1,
			City:        req.City,
			PostalCode:  req.PostalCode,
			Reference:   req.Reference,
			IsPrincipal: count == 0,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save address"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":      "address added",
			"address_id":   address.ID,
			"is_principal": address.IsPrincipal,
		})
	}
}

// PUT /api/addresses/:id
func UpdateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res := db.Model(&models.Address{}).Where("id = ?", c.Param("id")).Updates(map[string]interface{}{
			"alias":       req.Alias,
			"line1":       req.Line1,
			"city":        req.City,
			"postal_code": req.PostalCode,
			"reference":   req.Reference,
		})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update address"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "address updated"})
	}
}

// DELETE /api/addresses/:id
func DeleteAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).Delete(&models.Address{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete address"})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}
