package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/auth"
	medicineControllers "github.com/RAravinthRaj/medicine-finder/controllers/medicine"
)

// SetupAuthRoutes registers all public endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignupHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
	}

	// The storefront search bar works without an account.
	r.POST("/search", medicineControllers.SearchMedicines(db))
}
