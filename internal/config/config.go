package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string

	// Konsol laporan
	ReportAPIBaseURL string        // base URL server yang dipantau konsol
	PollInterval     time.Duration // jeda antar tick poller
	ExportDir        string        // folder penyimpanan dokumen laporan
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=warung port=5432 sslmode=disable"),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		ReportAPIBaseURL: getEnv("REPORT_API_BASE_URL", "http://localhost:8080"),
		PollInterval:     getEnvMillis("POLL_INTERVAL_MS", 1000),
		ExportDir:        getEnv("EXPORT_DIR", "./laporan"),
	}

	// Pengecekan untuk production
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=warung port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN memakai nilai default, untuk production wajib set koneksi Postgres sendiri.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS memakai nilai default, untuk production wajib set domain sendiri.")
	}

	return cfg
}

// ConsoleConfig: bagian yang dipakai konsol laporan saja (tanpa database).
type ConsoleConfig struct {
	ReportAPIBaseURL string
	PollInterval     time.Duration
	ExportDir        string
}

func LoadConsole() *ConsoleConfig {
	return &ConsoleConfig{
		ReportAPIBaseURL: getEnv("REPORT_API_BASE_URL", "http://localhost:8080"),
		PollInterval:     getEnvMillis("POLL_INTERVAL_MS", 1000),
		ExportDir:        getEnv("EXPORT_DIR", "./laporan"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvMillis(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Millisecond
		}
		log.Printf("[WARN] %s tidak valid (%q), memakai default %d ms", key, v, def)
	}
	return time.Duration(def) * time.Millisecond
}
