package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	medicineControllers "github.com/RAravinthRaj/medicine-finder/controllers/medicine"
	orderControllers "github.com/RAravinthRaj/medicine-finder/controllers/order"
	userControllers "github.com/RAravinthRaj/medicine-finder/controllers/user"
	"github.com/RAravinthRaj/medicine-finder/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// User management
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// Catalog management
		medicineAdmin := adminGroup.Group("/medicines")
		{
			medicineAdmin.POST("", medicineControllers.CreateMedicine(db))
			medicineAdmin.PUT("/:id", medicineControllers.UpdateMedicine(db))
			medicineAdmin.GET("", medicineControllers.GetMedicines(db))
			medicineAdmin.DELETE("/:id", medicineControllers.DeleteMedicine(db))
			medicineAdmin.POST("/import-excel", medicineControllers.ImportMedicinesFromExcel(db))
			medicineAdmin.GET("/export-excel", medicineControllers.ExportMedicinesToExcel(db))
		}

		// Order oversight
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
