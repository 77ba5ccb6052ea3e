package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/models"
	"github.com/starlish/bimbel_backend/internal/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	DB *gorm.DB
}

func (ec *ExportController) Export(c *gin.Context) {
	switch c.Query("type") {
	case "attendance":
		ec.exportAttendance(c)
	case "finance":
		ec.exportFinance(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipe export tidak valid"})
	}
}

func (ec *ExportController) exportAttendance(c *gin.Context) {
	q := ec.DB.Model(&models.Attendance{}).
		Preload("Student.Class").
		Preload("Session").
		Joins("JOIN students ON students.id = attendances.student_id").
		Order("attendances.date ASC, students.student_id ASC")

	if classID := c.Query("classId"); classID != "" {
		q = q.Where("students.class_id = ?", classID)
	}
	if start, end, ok := financeRange(c.Query("month"), c.Query("year")); ok {
		q = q.Where("attendances.date >= ? AND attendances.date <= ?", start, end)
	}

	var marks []models.Attendance
	if err := q.Find(&marks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat export"})
		return
	}

	f, err := spreadsheet.BuildAttendanceWorkbook(marks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat export"})
		return
	}
	sendWorkbook(c, f, fmt.Sprintf("absensi-%s.xlsx", time.Now().Format("20060102")))
}

func (ec *ExportController) exportFinance(c *gin.Context) {
	q := ec.DB.Model(&models.Finance{}).Order("date DESC")
	if start, end, ok := financeRange(c.Query("month"), c.Query("year")); ok {
		q = q.Where("date >= ? AND date <= ?", start, end)
	}

	var records []models.Finance
	if err := q.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat export"})
		return
	}

	f, err := spreadsheet.BuildFinanceWorkbook(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat export"})
		return
	}
	sendWorkbook(c, f, fmt.Sprintf("keuangan-%s.xlsx", time.Now().Format("20060102")))
}

func sendWorkbook(c *gin.Context, f *excelize.File, filename string) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat export"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
