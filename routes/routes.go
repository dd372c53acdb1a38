package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	chatControllers "github.com/RAravinthRaj/medicine-finder/controllers/chat"
	"github.com/RAravinthRaj/medicine-finder/store"
)

// SetupRoutes is the single entry-point that wires up the Auth, User, Admin
// and Order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, st store.Checkout, responder *chatControllers.Responder) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected), including checkout and the chatbot
	SetupUserRoutes(r, db, st, responder)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)

	// Order event streaming
	SetupOrderRoutes(r)
}
