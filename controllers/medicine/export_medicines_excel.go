package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

// ExportMedicinesToExcel downloads the full catalog as a spreadsheet in the
// same column layout the importer accepts.
// GET /admin/medicines/export-excel
func ExportMedicinesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var medicines []models.Medicine
		if err := db.Order("id asc").Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicines"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Medicines")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Quantity", "Price", "CreatedAt", "UpdatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, m := range medicines {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.Name)
			row.AddCell().SetValue(m.Quantity)
			row.AddCell().SetValue(m.Price)
			row.AddCell().SetValue(m.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(m.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", `attachment; filename="medicines.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
