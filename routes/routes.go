package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/auth"
	"github.com/AlexTarazonal/ecommerceSuplementos/cart"
	addressControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/address"
	cartControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/cart"
	clientControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/client"
	dashboardControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/dashboard"
	productControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/product"
	salesControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/sales"
	shippingControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/shipping"
	shopControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/shop"
	userControllers "github.com/AlexTarazonal/ecommerceSuplementos/controllers/user"
	"github.com/AlexTarazonal/ecommerceSuplementos/middleware"
)

// SetupRoutes wires every route group under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cartStore *cart.Store) {
	api := r.Group("/api")

	setupAuthRoutes(api, db)
	setupShopRoutes(api, db)
	setupCartRoutes(api, cartStore)
	setupClientRoutes(api, db)
	setupAdminRoutes(api, db)
}

func setupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
	}
}

// Storefront routes are public, matching the original flow where checkout
// carries the user id in the payload.
func setupShopRoutes(api *gin.RouterGroup, db *gorm.DB) {
	shop := api.Group("/shop")
	{
		shop.GET("/products", shopControllers.GetCatalogHandler(db))
		shop.GET("/shipping-methods", shopControllers.GetShippingMethodsHandler(db))
		shop.GET("/orders/:orderID", shopControllers.GetOrderHandler(db))
		shop.POST("/checkout", shopControllers.CheckoutHandler(db))
		shop.POST("/pay", shopControllers.PayHandler(db))
	}
}

func setupCartRoutes(api *gin.RouterGroup, cartStore *cart.Store) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.OptionalToken)
	{
		cartGroup.GET("", cartControllers.GetCartHandler(cartStore))
		cartGroup.POST("", cartControllers.AddToCartHandler(cartStore))
		cartGroup.PUT("", cartControllers.SetQuantityHandler(cartStore))
		cartGroup.DELETE("/:productID", cartControllers.RemoveFromCartHandler(cartStore))
		cartGroup.DELETE("", cartControllers.ClearCartHandler(cartStore))
		cartGroup.POST("/rebind", cartControllers.RebindCartHandler(cartStore))
	}
}

func setupClientRoutes(api *gin.RouterGroup, db *gorm.DB) {
	client := api.Group("/client")
	client.Use(middleware.ValidateToken)
	{
		client.GET("/orders/:userID", clientControllers.GetUserOrdersHandler(db))
		client.PUT("/orders/:orderID", clientControllers.UpdateOrderContactHandler(db))
		client.PUT("/profile/:userID", clientControllers.UpdateProfileHandler(db))
	}

	addresses := api.Group("/addresses")
	addresses.Use(middleware.ValidateToken)
	{
		addresses.GET("/:userID", addressControllers.GetUserAddressesHandler(db))
		addresses.POST("", addressControllers.CreateAddressHandler(db))
		addresses.PUT("/:id", addressControllers.UpdateAddressHandler(db))
		addresses.DELETE("/:id", addressControllers.DeleteAddressHandler(db))
	}
}

// Admin routes sit behind the API-key middleware.
func setupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("")
	admin.Use(middleware.ValidateAPIKey)
	{
		users := admin.Group("/users")
		{
			users.GET("", userControllers.GetAllUsersHandler(db))
			users.POST("", userControllers.CreateUserHandler(db))
			users.PUT("/:id", userControllers.UpdateUserHandler(db))
			users.DELETE("/:id", userControllers.DeleteUserHandler(db))
		}

		products := admin.Group("/products")
		{
			products.GET("", productControllers.GetAllProductsHandler(db))
			products.GET("/:id", productControllers.GetProductHandler(db))
			products.POST("", productControllers.CreateProductHandler(db))
			products.PUT("/:id", productControllers.UpdateProductHandler(db))
			products.DELETE("/:id", productControllers.DeleteProductHandler(db))
			products.GET("/export-excel", productControllers.ExportProductsToExcelHandler(db))
			products.POST("/import-excel", productControllers.ImportProductsFromExcelHandler(db))
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", productControllers.GetAllCategoriesHandler(db))
			categories.GET("/:id", productControllers.GetCategoryHandler(db))
			categories.POST("", productControllers.CreateCategoryHandler(db))
			categories.PUT("/:id", productControllers.UpdateCategoryHandler(db))
			categories.DELETE("/:id", productControllers.DeleteCategoryHandler(db))
		}

		sales := admin.Group("/sales")
		{
			sales.GET("", salesControllers.GetAllOrdersHandler(db))
			sales.GET("/ws", salesControllers.OrderFeedHandler)
			sales.PUT("/:orderID/cancel", salesControllers.CancelOrderHandler(db))
			sales.DELETE("/:orderID", salesControllers.DeleteOrderHandler(db))
		}

		shipping := admin.Group("/shipping")
		{
			shipping.GET("", shippingControllers.GetAllShipmentsHandler(db))
			shipping.PUT("/:shipmentID", shippingControllers.UpdateShipmentStatusHandler(db))
		}

		admin.GET("/dashboard/summary", dashboardControllers.GetSummaryHandler(db))
	}
}
