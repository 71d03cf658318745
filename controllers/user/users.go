package userControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

// GET /api/users
func GetAllUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "first_name", "last_name", "email", "phone", "role", "status", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

type userInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Password  string `json:"password"`
}

// POST /api/users — admin creates a user manually; a default password is
// assigned when none is supplied.
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req userInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		password := req.Password
		if password == "" {
			password = "123456"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		role := req.Role
		if role == "" {
			role = "client"
		}
		status := models.UserStatus(req.Status)
		if status == "" {
			status = models.UserStatusActive
		}

		user := models.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        strings.ToLower(req.Email),
			Phone:        req.Phone,
			Role:         role,
			Status:       status,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := db.Create(&user).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrDuplicateEmail.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": user.ID, "message": "user created"})
	}
}

// PUT /api/users/:id
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req userInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"email":      strings.ToLower(req.Email),
			"phone":      req.Phone,
		}
		if req.Role != "" {
			updates["role"] = req.Role
		}
		if req.Status != "" {
			updates["status"] = req.Status
		}
		if strings.TrimSpace(req.Password) != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
				return
			}
			updates["password_hash"] = string(hash)
		}

		if err := db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user updated"})
	}
}

// DELETE /api/users/:id
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Where("id = ?", id).Delete(&models.User{}).Error; err != nil {
			// Foreign keys keep users with purchase history around.
			c.JSON(http.StatusConflict, gin.H{"error": "cannot delete a user with order history"})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}
