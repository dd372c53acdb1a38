package medicineControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

type updateMedicineInput struct {
	Name     *string  `json:"name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

// UpdateMedicine edits name, stock level or price of a catalog entry.
// PUT /admin/medicines/:id
func UpdateMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Medicine ID is required"})
			return
		}

		var medicine models.Medicine
		if err := db.First(&medicine, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicine"})
			}
			return
		}

		var input updateMedicineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Quantity != nil {
			if *input.Quantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative"})
				return
			}
			updates["quantity"] = *input.Quantity
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
				return
			}
			updates["price"] = *input.Price
		}

		if len(updates) > 0 {
			if err := db.Model(&medicine).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update medicine"})
				return
			}
		}
		c.JSON(http.StatusOK, medicine)
	}
}
