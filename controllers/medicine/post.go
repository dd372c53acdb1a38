package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

type createMedicineInput struct {
	Name     string   `json:"name" binding:"required"`
	Quantity *int     `json:"quantity" binding:"required,min=0"`
	Price    *float64 `json:"price" binding:"required,min=0"`
}

// CreateMedicine adds a new catalog entry.
// POST /admin/medicines
func CreateMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createMedicineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		medicine := models.Medicine{
			Name:     input.Name,
			Quantity: *input.Quantity,
			Price:    *input.Price,
		}
		if err := db.Create(&medicine).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create medicine"})
			return
		}
		c.JSON(http.StatusCreated, medicine)
	}
}
