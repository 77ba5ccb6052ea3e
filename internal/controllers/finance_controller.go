package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/middleware"
	"github.com/starlish/bimbel_backend/internal/models"
	"github.com/starlish/bimbel_backend/internal/report"
)

type FinanceController struct {
	DB *gorm.DB
}

type createFinanceRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Date        string  `json:"date" binding:"required"`
}

type updateFinanceRequest struct {
	ID          string  `json:"id" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Date        string  `json:"date" binding:"required"`
}

type deleteFinanceRequest struct {
	ID string `json:"id" binding:"required"`
}

// ListFinance returns the filtered ledger together with its totals and the
// month-bucketed series the dashboard charts.
func (fc *FinanceController) ListFinance(c *gin.Context) {
	q := fc.DB.Preload("Admin").Order("date DESC")

	if t := c.Query("type"); models.IsValidFinanceType(t) {
		q = q.Where("type = ?", t)
	}
	if start, end, ok := financeRange(c.Query("month"), c.Query("year")); ok {
		q = q.Where("date >= ? AND date <= ?", start, end)
	}

	var records []models.Finance
	if err := q.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	summary, monthly := report.SummarizeFinance(records)
	c.JSON(http.StatusOK, gin.H{
		"finance":     records,
		"summary":     summary,
		"monthlyData": monthly,
	})
}

func (fc *FinanceController) CreateFinance(c *gin.Context) {
	var req createFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak lengkap"})
		return
	}
	if !models.IsValidFinanceType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipe harus income atau expense"})
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal tidak valid"})
		return
	}

	admin := middleware.CurrentAdmin(c)
	rec := models.Finance{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		AdminID:     admin.ID,
	}
	if err := fc.DB.Create(&rec).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"finance": rec})
}

func (fc *FinanceController) UpdateFinance(c *gin.Context) {
	var req updateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak lengkap"})
		return
	}
	if !models.IsValidFinanceType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipe harus income atau expense"})
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal tidak valid"})
		return
	}

	var rec models.Finance
	if err := fc.DB.Where("id = ?", req.ID).First(&rec).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data keuangan tidak ditemukan"})
		return
	}

	updates := map[string]interface{}{
		"type":        req.Type,
		"amount":      req.Amount,
		"description": req.Description,
		"category":    req.Category,
		"date":        date,
	}
	if err := fc.DB.Model(&rec).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"finance": rec})
}

func (fc *FinanceController) DeleteFinance(c *gin.Context) {
	var req deleteFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak lengkap"})
		return
	}
	var rec models.Finance
	if err := fc.DB.Where("id = ?", req.ID).First(&rec).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data keuangan tidak ditemukan"})
		return
	}
	if err := fc.DB.Delete(&rec).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// financeRange resolves month/year query params: both set narrows to that
// month, year alone covers the whole year, otherwise no restriction.
func financeRange(monthStr, yearStr string) (start, end time.Time, ok bool) {
	year, yErr := strconv.Atoi(yearStr)
	if yErr != nil {
		return time.Time{}, time.Time{}, false
	}
	if month, mErr := strconv.Atoi(monthStr); mErr == nil && month >= 1 && month <= 12 {
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, 0).Add(-time.Second)
		return start, end, true
	}
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(1, 0, 0).Add(-time.Second)
	return start, end, true
}
