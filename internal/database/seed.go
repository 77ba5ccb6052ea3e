package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/starlish/bimbel_backend/internal/config"
	"github.com/starlish/bimbel_backend/internal/models"
	"github.com/starlish/bimbel_backend/internal/utils"
)

func SeedAdmins(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	superHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	super := models.Admin{
		Email:    cfg.AdminEmail,
		Name:     cfg.AdminName,
		Password: superHash,
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}
	if err := db.Create(&super).Error; err != nil {
		return err
	}

	teacherHash, err := utils.HashPassword(cfg.TeacherPassword)
	if err != nil {
		return err
	}
	for i := 1; i <= 3; i++ {
		t := models.Admin{
			Email:    fmt.Sprintf("guru%d@example.com", i),
			Name:     fmt.Sprintf("Guru %d", i),
			Password: teacherHash,
			Role:     models.RoleTeacher,
			IsActive: true,
		}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded super admin:", super.Email)
	return nil
}

// SeedClasses creates Kelas 1-12, each with Sesi 1-5 and its fixed time slot.
func SeedClasses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Class{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sessionTimes := []struct {
		Name string
		Time string
	}{
		{"Sesi 1", "08:00 - 09:30"},
		{"Sesi 2", "09:45 - 11:15"},
		{"Sesi 3", "13:00 - 14:30"},
		{"Sesi 4", "14:45 - 16:15"},
		{"Sesi 5", "16:30 - 18:00"},
	}

	for i := 1; i <= 12; i++ {
		cls := models.Class{Name: fmt.Sprintf("Kelas %d", i)}
		if err := db.Create(&cls).Error; err != nil {
			return err
		}
		for _, s := range sessionTimes {
			t := s.Time
			sess := models.ClassSession{Name: s.Name, Time: &t, ClassID: cls.ID}
			if err := db.Create(&sess).Error; err != nil {
				return err
			}
		}
	}
	log.Println("Seeded 12 classes with 5 sessions each")
	return nil
}
