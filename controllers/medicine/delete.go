package medicineControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

// DeleteMedicine removes a catalog entry. Existing order items keep their
// own name/price snapshot, so history is unaffected.
// DELETE /admin/medicines/:id
func DeleteMedicine(db *gorm.DB) gin.HandlerFunc {
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

		if err := db.Delete(&medicine).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medicine"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Medicine deleted"})
	}
}
