package config

import "os"

// Config carries everything read from the environment at boot. One value
// is constructed in main and handed to whatever needs it; nothing in this
// package is global.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
	GinMode   string
	AppEnv    string
}

// Load reads the environment with sensible development fallbacks
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "pos.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "pos_backend_super_secret_2024")),
		GinMode:   getEnv("GIN_MODE", ""),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

// Development reports whether internal error detail may leak to clients
func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
