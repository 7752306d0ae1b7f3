package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort               = "8080"
	defaultInitialRecordCount = 100
	defaultMaxGenerateCount   = 100000
	defaultFixtureBaseDate    = "2024-07-23"
)

// Settings is the process configuration, read once from the environment.
type Settings struct {
	Port              string
	Production        bool
	AllowedOrigins    []string
	InitialRecords    int
	MaxGenerateCount  int
	FixtureSeed       int64
	FixtureSeedSet    bool
	FixtureBaseDate   time.Time
	RedisAddress      string
	RateLimitEnabled  bool
	RateLimitRequests int64
	RateLimitWindow   time.Duration
	ShutdownTimeout   time.Duration
}

// Load reads Settings from the environment.
//
// Env:
// - API_PORT or PORT (default 8080)
// - GO_ENV=production switches CORS to the CORS_ALLOWED_ORIGINS allowlist
// - INITIAL_RECORD_COUNT (default 100), MAX_GENERATE_COUNT (default 100000)
// - FIXTURE_SEED (unset: seeded from the clock), FIXTURE_BASE_DATE (YYYY-MM-DD)
// - REDIS_ADDRESS (unset: no redis)
// - RATE_LIMIT_ENABLED, RATE_LIMIT_MAX_REQUESTS (600), RATE_LIMIT_WINDOW_SECONDS (60)
// - SHUTDOWN_TIMEOUT_SECONDS (30)
func Load() Settings {
	port := strings.TrimSpace(os.Getenv("API_PORT"))
	if port == "" {
		port = strings.TrimSpace(os.Getenv("PORT"))
	}
	if port == "" {
		port = defaultPort
	}

	s := Settings{
		Port:              port,
		Production:        strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production"),
		AllowedOrigins:    SplitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
		InitialRecords:    intFromEnv("INITIAL_RECORD_COUNT", defaultInitialRecordCount),
		MaxGenerateCount:  intFromEnv("MAX_GENERATE_COUNT", defaultMaxGenerateCount),
		RedisAddress:      strings.TrimSpace(os.Getenv("REDIS_ADDRESS")),
		RateLimitEnabled:  boolFromEnv("RATE_LIMIT_ENABLED"),
		RateLimitRequests: int64(intFromEnv("RATE_LIMIT_MAX_REQUESTS", 600)),
		RateLimitWindow:   time.Duration(intFromEnv("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		ShutdownTimeout:   time.Duration(intFromEnv("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if v := strings.TrimSpace(os.Getenv("FIXTURE_SEED")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.FixtureSeed = n
			s.FixtureSeedSet = true
		}
	}
	if !s.FixtureSeedSet {
		s.FixtureSeed = time.Now().UnixNano()
	}

	s.FixtureBaseDate, _ = time.Parse(time.DateOnly, defaultFixtureBaseDate)
	if v := strings.TrimSpace(os.Getenv("FIXTURE_BASE_DATE")); v != "" {
		if d, err := time.Parse(time.DateOnly, v); err == nil {
			s.FixtureBaseDate = d
		}
	}

	if s.InitialRecords < 0 {
		s.InitialRecords = 0
	}
	if s.MaxGenerateCount < 0 {
		s.MaxGenerateCount = defaultMaxGenerateCount
	}
	if s.InitialRecords > s.MaxGenerateCount {
		s.InitialRecords = s.MaxGenerateCount
	}
	if s.RateLimitRequests <= 0 {
		s.RateLimitRequests = 600
	}
	if s.RateLimitWindow <= 0 {
		s.RateLimitWindow = time.Minute
	}
	if s.ShutdownTimeout <= 0 {
		s.ShutdownTimeout = 30 * time.Second
	}
	return s
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolFromEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// SplitAndTrim splits a comma-separated list, dropping blanks.
func SplitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
