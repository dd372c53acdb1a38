package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

const searchPageSize = 6

type searchRequest struct {
	MedicineName string   `json:"medicine_name"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	MinStock     *int     `json:"min_stock"`
	Page         int      `json:"page"`
}

// SearchMedicines powers the storefront search bar: name substring plus
// optional price/stock filters, paginated six per page.
// POST /search
func SearchMedicines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if req.Page < 1 {
			req.Page = 1
		}

		query := db.Model(&models.Medicine{}).
			Where("name ILIKE ?", "%"+req.MedicineName+"%")
		if req.MinPrice != nil {
			query = query.Where("price >= ?", *req.MinPrice)
		}
		if req.MaxPrice != nil {
			query = query.Where("price <= ?", *req.MaxPrice)
		}
		if req.MinStock != nil {
			query = query.Where("quantity >= ?", *req.MinStock)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search medicines"})
			return
		}

		totalPages := int(total) / searchPageSize
		if int(total)%searchPageSize != 0 {
			totalPages++
		}

		var medicines []models.Medicine
		if err := query.
			Order("name asc").
			Limit(searchPageSize).
			Offset((req.Page - 1) * searchPageSize).
			Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search medicines"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"results":     medicines,
			"has_next":    req.Page < totalPages,
			"has_prev":    req.Page > 1,
			"page":        req.Page,
			"total_pages": totalPages,
		})
	}
}
