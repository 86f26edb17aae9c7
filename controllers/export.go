package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func formatHandledAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// ExportInquiries exports the inquiry list to CSV or Excel
func ExportInquiries(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	query := config.DB.Model(&models.Inquiry{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var inquiries []models.Inquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	headers := []string{"ID", "Name", "Email", "Company", "Phone", "Product Interest", "Message", "Status", "Created At", "Handled By", "Handled At"}
	data := make([][]string, 0, len(inquiries))
	for _, q := range inquiries {
		data = append(data, []string{
			fmt.Sprintf("%d", q.ID), q.Name, q.Email, q.Company, q.Phone,
			q.ProductInterest, q.Message, q.Status,
			q.CreatedAt.Format("2006-01-02 15:04:05"), q.HandledBy, formatHandledAt(q.HandledAt),
		})
	}

	if format == "xlsx" {
		exportExcel(c, "Inquiries", headers, data)
	} else {
		exportCSV(c, "inquiries.csv", headers, data)
	}
}

// ExportQuotes exports the quote-request list to CSV or Excel
func ExportQuotes(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	query := config.DB.Model(&models.QuoteRequest{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var quotes []models.QuoteRequest
	if err := query.Order("created_at DESC").Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quote requests"})
		return
	}

	headers := []string{"ID", "Name", "Email", "Company", "Phone", "Product Type", "Display Size", "Quantity", "Requirements", "Timeline", "Budget", "Status", "Created At", "Handled By", "Handled At"}
	data := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		data = append(data, []string{
			fmt.Sprintf("%d", q.ID), q.Name, q.Email, q.Company, q.Phone,
			q.ProductType, q.DisplaySize, fmt.Sprintf("%d", q.Quantity),
			q.Requirements, q.Timeline, q.Budget, q.Status,
			q.CreatedAt.Format("2006-01-02 15:04:05"), q.HandledBy, formatHandledAt(q.HandledAt),
		})
	}

	if format == "xlsx" {
		exportExcel(c, "Quotes", headers, data)
	} else {
		exportCSV(c, "quotes.csv", headers, data)
	}
}

func exportExcel(c *gin.Context, sheetName string, headers []string, data [][]string) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create header style"})
		return
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", sheetName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func exportCSV(c *gin.Context, filename string, headers []string, data [][]string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")

	w := csv.NewWriter(c.Writer)
	w.Write(headers)
	for _, row := range data {
		w.Write(row)
	}
	w.Flush()
}
