package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/models"
	"github.com/starlish/bimbel_backend/internal/report"
)

type DashboardController struct {
	DB *gorm.DB
}

// Stats backs the landing cards of the back office: headcounts, today's
// marks and the running balance.
func (dc *DashboardController) Stats(c *gin.Context) {
	var studentCount, classCount, adminCount, todayMarks int64

	if err := dc.DB.Model(&models.Student{}).Count(&studentCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	if err := dc.DB.Model(&models.Class{}).Count(&classCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	if err := dc.DB.Model(&models.Admin{}).Where("is_active = ?", true).Count(&adminCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := dc.DB.Model(&models.Attendance{}).
		Where("date >= ? AND date < ?", today, today.AddDate(0, 0, 1)).
		Count(&todayMarks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	var records []models.Finance
	if err := dc.DB.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	summary, _ := report.SummarizeFinance(records)

	c.JSON(http.StatusOK, gin.H{
		"totalStudents":   studentCount,
		"totalClasses":    classCount,
		"totalAdmins":     adminCount,
		"todayAttendance": todayMarks,
		"balance":         summary.Balance,
	})
}
