package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/models"
)

type ClassController struct {
	DB *gorm.DB
}

type createClassRequest struct {
	Name string `json:"name" binding:"required"`
}

type createSessionRequest struct {
	Name string  `json:"name" binding:"required"`
	Time *string `json:"time"`
}

func (cc *ClassController) ListClasses(c *gin.Context) {
	var classes []models.Class
	err := cc.DB.
		Preload("Sessions", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Students", func(db *gorm.DB) *gorm.DB { return db.Order("student_id ASC") }).
		Order("name ASC").
		Find(&classes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	out := make([]gin.H, 0, len(classes))
	for _, cls := range classes {
		out = append(out, gin.H{
			"id":           cls.ID,
			"name":         cls.Name,
			"sessions":     cls.Sessions,
			"students":     cls.Students,
			"studentCount": len(cls.Students),
		})
	}
	c.JSON(http.StatusOK, gin.H{"classes": out})
}

func (cc *ClassController) CreateClass(c *gin.Context) {
	var req createClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama kelas harus diisi"})
		return
	}

	cls := models.Class{Name: strings.TrimSpace(req.Name)}
	if err := cc.DB.Create(&cls).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "Kelas sudah ada"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"class": cls})
}

func (cc *ClassController) CreateSession(c *gin.Context) {
	classID := strings.TrimSpace(c.Param("id"))
	var cls models.Class
	if err := cc.DB.Where("id = ?", classID).First(&cls).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kelas tidak ditemukan"})
		return
	}

	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama sesi harus diisi"})
		return
	}

	sess := models.ClassSession{Name: strings.TrimSpace(req.Name), Time: req.Time, ClassID: cls.ID}
	if err := cc.DB.Create(&sess).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

func (cc *ClassController) DeleteClass(c *gin.Context) {
	classID := strings.TrimSpace(c.Param("id"))
	var cls models.Class
	if err := cc.DB.Where("id = ?", classID).First(&cls).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kelas tidak ditemukan"})
		return
	}

	var studentCount int64
	if err := cc.DB.Model(&models.Student{}).Where("class_id = ?", cls.ID).Count(&studentCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	if studentCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kelas masih memiliki siswa"})
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", cls.ID).Delete(&models.ClassSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cls).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (cc *ClassController) DeleteSession(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Param("sessionId"))
	var sess models.ClassSession
	if err := cc.DB.Where("id = ?", sessionID).First(&sess).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sesi tidak ditemukan"})
		return
	}

	var markCount int64
	if err := cc.DB.Model(&models.Attendance{}).Where("session_id = ?", sess.ID).Count(&markCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}
	if markCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sesi sudah memiliki riwayat absensi"})
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Student{}).Where("session_id = ?", sess.ID).
			Update("session_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&sess).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
