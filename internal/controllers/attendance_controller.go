package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/starlish/bimbel_backend/internal/middleware"
	"github.com/starlish/bimbel_backend/internal/models"
	"github.com/starlish/bimbel_backend/internal/report"
	"github.com/starlish/bimbel_backend/internal/ws"
)

type AttendanceController struct {
	DB  *gorm.DB
	Hub *ws.AttendanceHub
}

type markAttendanceRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Present   *bool  `json:"present" binding:"required"`
}

type updateAttendanceRequest struct {
	ID      string `json:"id" binding:"required"`
	Present *bool  `json:"present" binding:"required"`
}

type deleteAttendanceRequest struct {
	ID string `json:"id" binding:"required"`
}

func (at *AttendanceController) ListAttendance(c *gin.Context) {
	q := at.DB.Model(&models.Attendance{}).
		Preload("Student.Class").
		Preload("Session").
		Preload("Admin").
		Joins("JOIN students ON students.id = attendances.student_id").
		Order("attendances.date DESC, students.student_id ASC")

	if date := c.Query("date"); date != "" {
		day, err := parseDay(date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal tidak valid"})
			return
		}
		q = q.Where("attendances.date >= ? AND attendances.date < ?", day, day.AddDate(0, 0, 1))
	}
	if sessionID := c.Query("sessionId"); sessionID != "" {
		q = q.Where("attendances.session_id = ?", sessionID)
	}
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("students.class_id = ?", classID)
	}

	var marks []models.Attendance
	if err := q.Find(&marks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": marks})
}

// MarkAttendance records a mark for (student, session, day). Racing requests
// for the same key resolve in the database via ON CONFLICT, never as
// duplicate rows.
func (at *AttendanceController) MarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak lengkap"})
		return
	}

	day, err := parseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal tidak valid"})
		return
	}

	var student models.Student
	if err := at.DB.Where("id = ?", req.StudentID).First(&student).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Siswa tidak ditemukan"})
		return
	}
	var sess models.ClassSession
	if err := at.DB.Where("id = ?", req.SessionID).First(&sess).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sesi tidak ditemukan"})
		return
	}

	admin := middleware.CurrentAdmin(c)
	mark := models.Attendance{
		StudentID: req.StudentID,
		SessionID: req.SessionID,
		Date:      day,
		Present:   *req.Present,
		AdminID:   admin.ID,
	}
	err = at.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "session_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"present", "admin_id", "updated_at"}),
	}).Create(&mark).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	var saved models.Attendance
	at.DB.Preload("Student.Class").Preload("Session").
		Where("student_id = ? AND session_id = ? AND date = ?", req.StudentID, req.SessionID, day).
		First(&saved)

	at.Hub.Broadcast(ws.AttendanceEvent{Type: "attendance_marked", Attendance: saved})
	c.JSON(http.StatusOK, gin.H{"attendance": saved})
}

func (at *AttendanceController) UpdateAttendance(c *gin.Context) {
	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak lengkap"})
		return
	}

	var mark models.Attendance
	if err := at.DB.Where("id = ?", req.ID).First(&mark).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Absensi tidak ditemukan"})
		return
	}

	if err := at.DB.Model(&mark).Update("present", *req.Present).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	at.Hub.Broadcast(ws.AttendanceEvent{Type: "attendance_updated", Attendance: mark})
	c.JSON(http.StatusOK, gin.H{"attendance": mark})
}

func (at *AttendanceController) DeleteAttendance(c *gin.Context) {
	var req deleteAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak lengkap"})
		return
	}

	var mark models.Attendance
	if err := at.DB.Where("id = ?", req.ID).First(&mark).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Absensi tidak ditemukan"})
		return
	}
	if err := at.DB.Delete(&mark).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	at.Hub.Broadcast(ws.AttendanceEvent{Type: "attendance_deleted", ID: req.ID})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AttendanceSummary serves the monthly report: one row per student in scope,
// including students without a single mark that month.
func (at *AttendanceController) AttendanceSummary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter month diperlukan (format: YYYY-MM)"})
		return
	}
	start, end, err := report.MonthRange(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter month diperlukan (format: YYYY-MM)"})
		return
	}

	studentQ := at.DB.Preload("Class").Preload("Session")
	classID := c.Query("classId")
	if classID != "" {
		studentQ = studentQ.Where("class_id = ?", classID)
	}
	var students []models.Student
	if err := studentQ.Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat mengambil data laporan"})
		return
	}

	markQ := at.DB.Where("date >= ? AND date <= ?", start, end)
	if classID != "" {
		markQ = markQ.Where("student_id IN (?)",
			at.DB.Model(&models.Student{}).Select("id").Where("class_id = ?", classID))
	}
	var marks []models.Attendance
	if err := markQ.Find(&marks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat mengambil data laporan"})
		return
	}

	summary := report.SummarizeAttendance(students, marks)
	c.JSON(http.StatusOK, gin.H{
		"month":         month,
		"summary":       summary,
		"totalStudents": len(summary),
		"startDate":     start.Format(time.RFC3339),
		"endDate":       end.Format(time.RFC3339),
	})
}

func parseDay(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, err
		}
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
