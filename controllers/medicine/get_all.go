package medicineControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

func GetMedicines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Filtering & sorting params
		search := c.Query("search")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		minStockStr := c.Query("min_stock")
		sortBy := c.DefaultQuery("sort_by", "name")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}
		switch sortBy {
		case "name", "price", "quantity", "created_at":
		default:
			sortBy = "name"
		}

		query := db.Model(&models.Medicine{})

		if search != "" {
			query = query.Where("name ILIKE ?", "%"+search+"%")
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}
		if minStockStr != "" {
			if ms, err := strconv.Atoi(minStockStr); err == nil {
				query = query.Where("quantity >= ?", ms)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_stock"})
				return
			}
		}

		var medicines []models.Medicine
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicines"})
			return
		}
		c.JSON(http.StatusOK, medicines)
	}
}
