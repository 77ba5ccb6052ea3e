package config

import (
	"os"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	JWTSecret  string
	// Session cookie lifetime in hours.
	SessionTTLHours string

	AdminEmail    string
	AdminPassword string
	AdminName     string

	TeacherPassword string // default password for seeded teacher accounts
}

func Load() *Config {
	return &Config{
		Port:            getenv("PORT", "8080"),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "5432"),
		DBUser:          getenv("DB_USER", "postgres"),
		DBPassword:      getenv("DB_PASSWORD", "postgres"),
		DBName:          getenv("DB_NAME", "bimbel_db"),
		DBSSLMode:       getenv("DB_SSLMODE", "disable"),
		JWTSecret:       getenv("JWT_SECRET", "supersecret_change_me"),
		SessionTTLHours: getenv("SESSION_TTL_HOURS", "24"),
		AdminEmail:      getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin123"),
		AdminName:       getenv("ADMIN_NAME", "Administrator"),
		TeacherPassword: getenv("TEACHER_PASSWORD", "admin123"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
