package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Port          string
	DatabaseURL   string
	SQLitePath    string
	LocalTimezone *time.Location
	// TickInterval is the cadence of the due-check timer.
	TickInterval time.Duration
	// CheckIntervalMinutes seeds Profile.CheckInterval on first start.
	CheckIntervalMinutes int
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = godotenv.Load()

	port := getenvDefault("PORT", "8080")
	databaseURL := os.Getenv("DATABASE_URL")
	sqlitePath := getenvDefault("SQLITE_PATH", "reminders.db")
	timezoneName := getenvDefault("LOCAL_TIMEZONE", "Local")

	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	tickSeconds := ParseIntEnv("TICK_SECONDS", 60)
	if tickSeconds < 1 {
		log.Printf("config: TICK_SECONDS must be positive, got %d; using 60", tickSeconds)
		tickSeconds = 60
	}
	checkInterval := ParseIntEnv("CHECK_INTERVAL_MINUTES", 60)
	if checkInterval < 1 {
		log.Printf("config: CHECK_INTERVAL_MINUTES must be positive, got %d; using 60", checkInterval)
		checkInterval = 60
	}

	return &Config{
		Port:                 port,
		DatabaseURL:          databaseURL,
		SQLitePath:           sqlitePath,
		LocalTimezone:        location,
		TickInterval:         time.Duration(tickSeconds) * time.Second,
		CheckIntervalMinutes: checkInterval,
	}
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// ParseIntEnv returns the integer value for an environment variable or the provided default.
func ParseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}
