package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/models"
)

type StudentController struct {
	DB *gorm.DB
}

type createStudentRequest struct {
	StudentID string  `json:"studentId" binding:"required"`
	Name      *string `json:"name"`
	ClassID   string  `json:"classId" binding:"required"`
	SessionID *string `json:"sessionId"`
}

type updateStudentRequest struct {
	ID        string  `json:"id" binding:"required"`
	Name      *string `json:"name"`
	ClassID   *string `json:"classId"`
	SessionID *string `json:"sessionId"`
}

type deleteStudentRequest struct {
	ID string `json:"id" binding:"required"`
}

func (sc *StudentController) ListStudents(c *gin.Context) {
	q := sc.DB.Preload("Class").Preload("Session").Order("student_id ASC")
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("class_id = ?", classID)
	}

	var students []models.Student
	if err := q.Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

func (sc *StudentController) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID siswa dan kelas harus diisi"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.StudentID))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID siswa harus diisi"})
		return
	}

	var existing models.Student
	if err := sc.DB.Where("student_id = ?", code).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID siswa sudah digunakan. Gunakan ID lain."})
		return
	}

	var cls models.Class
	if err := sc.DB.Where("id = ?", req.ClassID).First(&cls).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kelas tidak valid"})
		return
	}

	if req.SessionID != nil && *req.SessionID != "" {
		if !sc.sessionBelongsToClass(*req.SessionID, cls.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sesi tidak valid untuk kelas ini"})
			return
		}
	} else {
		req.SessionID = nil
	}

	var name *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed != "" {
			name = &trimmed
		}
	}

	student := models.Student{
		StudentID: code,
		Name:      name,
		ClassID:   cls.ID,
		SessionID: req.SessionID,
	}
	if err := sc.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat menyimpan data"})
		return
	}

	sc.DB.Preload("Class").Preload("Session").First(&student, "id = ?", student.ID)
	c.JSON(http.StatusCreated, gin.H{"student": student})
}

func (sc *StudentController) UpdateStudent(c *gin.Context) {
	var req updateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID siswa harus diisi"})
		return
	}

	var student models.Student
	if err := sc.DB.Where("id = ?", req.ID).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Siswa tidak ditemukan"})
		return
	}

	classID := student.ClassID
	if req.ClassID != nil {
		var cls models.Class
		if err := sc.DB.Where("id = ?", *req.ClassID).First(&cls).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kelas tidak valid"})
			return
		}
		classID = cls.ID
	}

	updates := map[string]interface{}{"class_id": classID}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			updates["name"] = nil
		} else {
			updates["name"] = trimmed
		}
	}
	if req.SessionID != nil {
		if *req.SessionID == "" {
			updates["session_id"] = nil
		} else {
			if !sc.sessionBelongsToClass(*req.SessionID, classID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Sesi tidak valid untuk kelas ini"})
				return
			}
			updates["session_id"] = *req.SessionID
		}
	}

	if err := sc.DB.Model(&student).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat mengupdate data"})
		return
	}

	sc.DB.Preload("Class").Preload("Session").First(&student, "id = ?", student.ID)
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// DeleteStudent removes a student together with its attendance history.
func (sc *StudentController) DeleteStudent(c *gin.Context) {
	var req deleteStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID siswa harus diisi"})
		return
	}

	var student models.Student
	if err := sc.DB.Where("id = ?", req.ID).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Siswa tidak ditemukan"})
		return
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", student.ID).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan saat menghapus data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (sc *StudentController) sessionBelongsToClass(sessionID, classID string) bool {
	var sess models.ClassSession
	return sc.DB.Where("id = ? AND class_id = ?", sessionID, classID).First(&sess).Error == nil
}
