package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimeLimit is the per-attempt time budget in seconds for disciplines
// without an explicit entry in TimeLimits.
const DefaultTimeLimit = 3600

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int
	// AdminPasswordHash is a precomputed bcrypt hash of the shared admin
	// secret (see cmd/hash-password). When empty, AdminPassword is hashed
	// at startup instead.
	AdminPasswordHash string
	AdminPassword     string
	// QuizDataDir holds the static question-set JSON files.
	QuizDataDir string
	// TimeLimits maps discipline codes to their time budget in seconds.
	TimeLimits map[string]int
	// InstructorName and InstructorTitle appear on rendered certificates
	// and reports.
	InstructorName  string
	InstructorTitle string
	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "3000"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "pretty"),
		JWTSecret:         getEnv("JWT_SECRET", "change-this-to-a-secure-random-string"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 12)) * time.Hour,
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "AGC202508530118"),
		QuizDataDir:       getEnv("QUIZ_DATA_DIR", "./data"),
		TimeLimits:        parseTimeLimits(getEnv("QUIZ_TIME_LIMITS", "genie:7200")),
		InstructorName:    getEnv("INSTRUCTOR_NAME", "Lt Col Oussama Atoui"),
		InstructorTitle:   getEnv("INSTRUCTOR_TITLE", "Instructeur Armes et Munitions"),
		AllowedOrigins:    parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// TimeLimitFor returns the fixed time budget in seconds for a discipline.
func (c *Config) TimeLimitFor(discipline string) int {
	if limit, ok := c.TimeLimits[discipline]; ok {
		return limit
	}
	return DefaultTimeLimit
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseTimeLimits splits a "discipline:seconds,discipline:seconds" string into
// a map. Malformed entries are skipped.
func parseTimeLimits(raw string) map[string]int {
	limits := make(map[string]int)
	for _, part := range strings.Split(raw, ",") {
		code, val, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		seconds, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || seconds <= 0 {
			continue
		}
		limits[strings.TrimSpace(code)] = seconds
	}
	return limits
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
