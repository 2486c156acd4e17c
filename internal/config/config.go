package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPAddr  = ":8080"
	DefaultAPIURL    = "https://1103.api.green-api.com"
	DefaultStorePath = "greenapi.db"
	DefaultLocale    = "ru"
	DefaultRateLimit = 60
)

type Config struct {
	HTTPAddr    string
	APIURL      string
	DatabaseURL string
	StorePath   string
	Locale      string
	// CORSOrigins lists extra origins allowed to call the API. Empty means
	// same-origin only, since this process serves the page itself.
	CORSOrigins []string
	// RateLimit is the number of actions per minute per client IP.
	RateLimit int
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Config: .env ignored: %v", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		HTTPAddr:    getEnv("HTTP_ADDR", DefaultHTTPAddr),
		APIURL:      strings.TrimRight(getEnv("GREEN_API_URL", DefaultAPIURL), "/"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StorePath:   getEnv("STORE_PATH", DefaultStorePath),
		Locale:      getEnv("LOCALE", DefaultLocale),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		RateLimit:   getEnvInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimit),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ Config: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
