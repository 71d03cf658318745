package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/cart"
	"github.com/AlexTarazonal/ecommerceSuplementos/models"
	"github.com/AlexTarazonal/ecommerceSuplementos/routes"
)

func main() {
	log.Println("starting application...")

	_ = godotenv.Load()

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.ShippingMethod{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Shipment{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedShippingMethods(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Guest-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, cart.NewStore())

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect DB: %v", err)
	}
	return db
}

// seedShippingMethods inserts the default methods on an empty table. Lead
// time is data here: the slow economy method is the only one adding days.
func seedShippingMethods(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.ShippingMethod{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	methods := []models.ShippingMethod{
		{Name: "Standard", Cost: decimal.NewFromFloat(5.00), LeadTimeDays: 0},
		{Name: "Express", Cost: decimal.NewFromFloat(10.00), LeadTimeDays: 0},
		{Name: "Economy", Cost: decimal.NewFromFloat(2.50), LeadTimeDays: 3},
	}
	if err := db.Create(&methods).Error; err != nil {
		log.Printf("failed to seed shipping methods: %v", err)
	}
}
