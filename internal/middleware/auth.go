package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/models"
)

const SessionCookie = "session"

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

type Claims struct {
	AdminID string `json:"admin_id"`
	Role    string `json:"role"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the signed session token, preferring the httpOnly
// cookie set at login. An Authorization: Bearer header is accepted as a
// fallback for non-browser clients.
func AuthMiddleware(db *gorm.DB, cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			auth := c.GetHeader("Authorization")
			if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			tokenStr = strings.TrimSpace(auth[len("Bearer "):])
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var admin models.Admin
		if err := db.Where("id = ? AND is_active = ?", claims.AdminID, true).First(&admin).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}

// RequireSuperAdmin gates the privileged mutations: finance edits/deletes,
// attendance edits/deletes, class management and student imports.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		aVal, ok := c.Get("admin")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		admin := aVal.(models.Admin)
		if admin.Role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Hanya super admin yang dapat melakukan aksi ini"})
			return
		}
		c.Next()
	}
}

// CurrentAdmin returns the authenticated admin stored by AuthMiddleware.
func CurrentAdmin(c *gin.Context) models.Admin {
	aVal, _ := c.Get("admin")
	admin, _ := aVal.(models.Admin)
	return admin
}
