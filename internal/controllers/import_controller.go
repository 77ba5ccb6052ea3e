package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/middleware"
	"github.com/starlish/bimbel_backend/internal/models"
	"github.com/starlish/bimbel_backend/internal/spreadsheet"
)

type ImportController struct {
	DB *gorm.DB
}

// Import ingests an uploaded workbook. Individual bad rows are counted and
// skipped; only a missing file or an unknown type rejects the request.
func (ic *ImportController) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File dan tipe import harus diisi"})
		return
	}
	defer file.Close()

	importType := c.PostForm("type")
	if importType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File dan tipe import harus diisi"})
		return
	}

	rows, err := spreadsheet.ReadRows(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File tidak dapat dibaca"})
		return
	}

	switch importType {
	case "students":
		ic.importStudents(c, rows)
	case "finance":
		ic.importFinance(c, rows)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipe import tidak valid"})
	}
}

func (ic *ImportController) importStudents(c *gin.Context, rows []spreadsheet.Row) {
	admin := middleware.CurrentAdmin(c)
	if admin.Role != models.RoleSuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Hanya super admin yang dapat import siswa"})
		return
	}

	parsed, errCount := spreadsheet.ParseStudentRows(rows)

	imported := 0
	classCache := make(map[string]models.Class)
	for _, row := range parsed {
		key := strings.ToLower(row.ClassName)
		cls, ok := classCache[key]
		if !ok {
			if err := ic.DB.Where("LOWER(name) = ?", key).First(&cls).Error; err != nil {
				errCount++
				continue
			}
			classCache[key] = cls
		}

		name := row.Name
		var existing models.Student
		if err := ic.DB.Where("student_id = ?", row.StudentID).First(&existing).Error; err == nil {
			updates := map[string]interface{}{"name": name, "class_id": cls.ID}
			if err := ic.DB.Model(&existing).Updates(updates).Error; err != nil {
				errCount++
				continue
			}
		} else {
			student := models.Student{StudentID: row.StudentID, Name: &name, ClassID: cls.ID}
			if err := ic.DB.Create(&student).Error; err != nil {
				errCount++
				continue
			}
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imported": imported,
		"errors":   errCount,
		"message":  fmt.Sprintf("Berhasil import %d siswa, %d error", imported, errCount),
	})
}

func (ic *ImportController) importFinance(c *gin.Context, rows []spreadsheet.Row) {
	admin := middleware.CurrentAdmin(c)
	parsed, errCount := spreadsheet.ParseFinanceRows(rows, time.Now().UTC())

	imported := 0
	for _, row := range parsed {
		category := row.Category
		description := row.Description
		rec := models.Finance{
			Type:        row.Type,
			Amount:      row.Amount,
			Category:    &category,
			Description: &description,
			Date:        row.Date,
			AdminID:     admin.ID,
		}
		if err := ic.DB.Create(&rec).Error; err != nil {
			errCount++
			continue
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imported": imported,
		"errors":   errCount,
		"message":  fmt.Sprintf("Berhasil import %d transaksi, %d error", imported, errCount),
	})
}
