package productControllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

// GET /api/products/export-excel
func ExportProductsToExcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "Stock", "Status", "Category", "Image"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(string(p.Status))
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Image)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write Excel file"})
			return
		}
	}
}

// POST /api/products/import-excel — rows: Name, Description, Price, Stock,
// CategoryID, Image. Header row is skipped.
func ImportProductsFromExcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open upload"})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
			return
		}
		wb, err := xlsx.OpenBinary(data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid xlsx file"})
			return
		}
		if len(wb.Sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "workbook has no sheets"})
			return
		}

		var created int
		err = db.Transaction(func(tx *gorm.DB) error {
			for i, row := range wb.Sheets[0].Rows {
				if i == 0 || len(row.Cells) < 4 {
					continue
				}
				price, perr := decimal.NewFromString(row.Cells[2].String())
				if perr != nil {
					continue
				}
				stock, _ := strconv.Atoi(row.Cells[3].String())
				product := models.Product{
					Name:        row.Cells[0].String(),
					Description: row.Cells[1].String(),
					Price:       price,
					Stock:       stock,
					Status:      models.ProductStatusActive,
				}
				if len(row.Cells) > 4 {
					if catID, cerr := strconv.ParseUint(row.Cells[4].String(), 10, 64); cerr == nil {
						product.CategoryID = uint(catID)
					}
				}
				if len(row.Cells) > 5 {
					product.Image = row.Cells[5].String()
				}
				if product.Name == "" {
					continue
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				created++
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed, nothing was saved"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "import finished", "created": created})
	}
}
