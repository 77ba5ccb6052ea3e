package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/models"
	"github.com/starlish/bimbel_backend/internal/utils"
)

type AdminController struct {
	DB *gorm.DB
}

type createAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func (ac *AdminController) ListAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := ac.DB.Where("is_active = ?", true).Order("name ASC").Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	out := make([]gin.H, 0, len(admins))
	for _, a := range admins {
		out = append(out, gin.H{
			"id":    a.ID,
			"email": a.Email,
			"name":  a.Name,
			"role":  a.Role,
		})
	}
	c.JSON(http.StatusOK, gin.H{"admins": out})
}

func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleTeacher
	}
	if !models.IsValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role harus super_admin atau teacher"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Terjadi kesalahan"})
		return
	}

	admin := models.Admin{
		Email:    req.Email,
		Name:     req.Name,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := ac.DB.Create(&admin).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "Email sudah digunakan"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"admin": gin.H{
		"id":    admin.ID,
		"email": admin.Email,
		"name":  admin.Name,
		"role":  admin.Role,
	}})
}
