package routes

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/config"
	"github.com/starlish/bimbel_backend/internal/controllers"
	"github.com/starlish/bimbel_backend/internal/middleware"
	"github.com/starlish/bimbel_backend/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	ttlHours, err := strconv.Atoi(cfg.SessionTTLHours)
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}
	sessionTTL := time.Duration(ttlHours) * time.Hour

	hub := ws.NewAttendanceHub()
	go hub.Run()

	authCtrl := &controllers.AuthController{DB: db, JWTSecret: cfg.JWTSecret, SessionTTL: sessionTTL}
	adminCtrl := &controllers.AdminController{DB: db}
	classCtrl := &controllers.ClassController{DB: db}
	studentCtrl := &controllers.StudentController{DB: db}
	attendanceCtrl := &controllers.AttendanceController{DB: db, Hub: hub}
	financeCtrl := &controllers.FinanceController{DB: db}
	exportCtrl := &controllers.ExportController{DB: db}
	importCtrl := &controllers.ImportController{DB: db}
	dashboardCtrl := &controllers.DashboardController{DB: db}

	// Public
	r.POST("/api/auth/login", authCtrl.Login)

	authMW := middleware.AuthMiddleware(db, middleware.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: sessionTTL,
	})

	api := r.Group("/api", authMW)
	{
		api.GET("/auth/me", authCtrl.Me)
		api.POST("/auth/logout", authCtrl.Logout)

		admin := api.Group("/admin")
		{
			admin.GET("/dashboard", dashboardCtrl.Stats)

			admin.GET("/admins", adminCtrl.ListAdmins)
			admin.POST("/admins", middleware.RequireSuperAdmin(), adminCtrl.CreateAdmin)

			admin.GET("/classes", classCtrl.ListClasses)
			admin.POST("/classes", middleware.RequireSuperAdmin(), classCtrl.CreateClass)
			admin.DELETE("/classes/:id", middleware.RequireSuperAdmin(), classCtrl.DeleteClass)
			admin.POST("/classes/:id/sessions", middleware.RequireSuperAdmin(), classCtrl.CreateSession)
			admin.DELETE("/classes/:id/sessions/:sessionId", middleware.RequireSuperAdmin(), classCtrl.DeleteSession)

			admin.GET("/students", studentCtrl.ListStudents)
			admin.POST("/students", studentCtrl.CreateStudent)
			admin.PUT("/students", studentCtrl.UpdateStudent)
			admin.DELETE("/students", studentCtrl.DeleteStudent)

			admin.GET("/attendance", attendanceCtrl.ListAttendance)
			admin.POST("/attendance", attendanceCtrl.MarkAttendance)
			admin.PUT("/attendance", middleware.RequireSuperAdmin(), attendanceCtrl.UpdateAttendance)
			admin.DELETE("/attendance", middleware.RequireSuperAdmin(), attendanceCtrl.DeleteAttendance)
			admin.GET("/attendance/summary", attendanceCtrl.AttendanceSummary)

			admin.GET("/finance", financeCtrl.ListFinance)
			admin.POST("/finance", financeCtrl.CreateFinance)
			admin.PUT("/finance", middleware.RequireSuperAdmin(), financeCtrl.UpdateFinance)
			admin.DELETE("/finance", middleware.RequireSuperAdmin(), financeCtrl.DeleteFinance)

			admin.GET("/export", exportCtrl.Export)
			admin.POST("/import", importCtrl.Import)

			admin.GET("/ws/attendance", ws.AttendanceHandler(hub))
		}
	}
}
