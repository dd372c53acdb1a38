package medicineControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

// ImportMedicinesFromExcel bulk loads catalog entries from an uploaded
// spreadsheet. Rows with an existing ID update that entry; rows without one
// create a new entry. Columns: ID, Name, Quantity, Price.
// POST /admin/medicines/import-excel
func ImportMedicinesFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			quantity, err1 := strconv.Atoi(get(2))
			price, err2 := strconv.ParseFloat(get(3), 64)

			if name == "" || err1 != nil || err2 != nil || quantity < 0 || price < 0 {
				skippedCount++
				continue
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Medicine
					if err := db.First(&existing, id).Error; err == nil {
						existing.Name = name
						existing.Quantity = quantity
						existing.Price = price
						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
						skippedCount++
						continue
					}
				}
			}

			medicine := models.Medicine{Name: name, Quantity: quantity, Price: price}
			if err := db.Create(&medicine).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
