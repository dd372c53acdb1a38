package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/RAravinthRaj/medicine-finder/controllers/cart"
	chatControllers "github.com/RAravinthRaj/medicine-finder/controllers/chat"
	checkoutControllers "github.com/RAravinthRaj/medicine-finder/controllers/checkout"
	medicineControllers "github.com/RAravinthRaj/medicine-finder/controllers/medicine"
	orderControllers "github.com/RAravinthRaj/medicine-finder/controllers/order"
	userControllers "github.com/RAravinthRaj/medicine-finder/controllers/user"
	"github.com/RAravinthRaj/medicine-finder/middleware"
	"github.com/RAravinthRaj/medicine-finder/store"
)

// SetupUserRoutes registers all "/user/*" endpoints plus the checkout and
// chatbot routes. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, st store.Checkout, responder *chatControllers.Responder) {
	// Checkout and chatbot keep their storefront paths.
	r.POST("/checkout", middleware.ValidateToken, checkoutControllers.CheckoutHandler(st))
	r.POST("/chatbot", middleware.ValidateToken, chatControllers.ChatHandler(chatControllers.GormExchangeLog{DB: db}, responder))
	r.GET("/chatbot", middleware.ValidateToken, chatControllers.ChatHistoryHandler(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// Profile
		userGroup.GET("/", userControllers.GetUser(db))

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:medicine_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// Browse the catalog
		userGroup.GET("/medicines", medicineControllers.GetMedicines(db))
		userGroup.GET("/medicines/:id", medicineControllers.GetMedicineByID(db))

		// Order history
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))
	}
}
