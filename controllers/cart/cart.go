package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlexTarazonal/ecommerceSuplementos/cart"
)

// cartKey resolves the bucket for the request: the authenticated user when
// the JWT middleware ran, otherwise the guest token header.
func cartKey(c *gin.Context) (string, bool) {
	if id, ok := c.Get("user_id"); ok {
		if userID, ok := id.(uint); ok {
			return cart.UserKey(userID), true
		}
	}
	if token := c.GetHeader("X-Guest-ID"); token != "" {
		return cart.GuestKey(token), true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "no cart identity: login or send X-Guest-ID"})
	return "", false
}

// GET /api/cart
func GetCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store.Items(key))
	}
}

// POST /api/cart
func AddToCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(c)
		if !ok {
			return
		}
		var item cart.Item
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		store.Add(key, item)
		c.JSON(http.StatusOK, store.Items(key))
	}
}

type setQuantityRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// PUT /api/cart
func SetQuantityHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(c)
		if !ok {
			return
		}
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		store.SetQuantity(key, req.ProductID, req.Quantity)
		c.JSON(http.StatusOK, store.Items(key))
	}
}

// DELETE /api/cart/:productID
func RemoveFromCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productID must be numeric"})
			return
		}
		store.Remove(key, uint(productID))
		c.JSON(http.StatusOK, store.Items(key))
	}
}

// DELETE /api/cart
func ClearCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(c)
		if !ok {
			return
		}
		store.Clear(key)
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}

type rebindRequest struct {
	GuestID string `json:"guest_id" binding:"required"`
}

// POST /api/cart/rebind — called right after login to carry the guest cart
// over to the user bucket.
func RebindCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := c.Get("user_id")
		userID, isUint := id.(uint)
		if !ok || !isUint {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		var req rebindRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		store.Rebind(cart.GuestKey(req.GuestID), cart.UserKey(userID))
		c.JSON(http.StatusOK, store.Items(cart.UserKey(userID)))
	}
}
