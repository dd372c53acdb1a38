package medicineControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

// GetMedicineByID returns a single catalog entry.
// URL param: /medicines/:id
func GetMedicineByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Medicine ID is required"})
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine ID"})
			return
		}

		var medicine models.Medicine
		if err := db.First(&medicine, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medicine"})
			}
			return
		}
		c.JSON(http.StatusOK, medicine)
	}
}
