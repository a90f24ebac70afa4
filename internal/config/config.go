package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort         int           `json:"server_port"`
	JWTSecretKey       string        `json:"jwt_secret_key"`
	JWTExpirationHours int           `json:"jwt_expiration_hours"`
	AdminDatabaseURL   string        `json:"admin_database_url"`
	PoolMaxPerTenant   int           `json:"pool_max_per_tenant"`
	PoolIdleTTL        time.Duration `json:"pool_idle_ttl"`
	PoolSweepInterval  time.Duration `json:"pool_sweep_interval"`
	DefaultRateLimit   int           `json:"default_rate_limit"`
	GlobalRateLimit    int           `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per tenant
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	return &Config{
		ServerPort:         serverPort,
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: jwtExpirationHours,
		AdminDatabaseURL:   os.Getenv("ADMIN_DATABASE_URL"),
		PoolMaxPerTenant:   getEnvIntWithDefault("POOL_MAX_CONNECTIONS_PER_TENANT", 5),
		PoolIdleTTL:        getEnvDurationWithDefault("POOL_CONNECTION_TTL", 30*time.Minute),
		PoolSweepInterval:  getEnvDurationWithDefault("POOL_SWEEP_INTERVAL", 10*time.Minute),
		DefaultRateLimit:   defaultRateLimit,
		GlobalRateLimit:    globalRateLimit,
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDurationWithDefault returns environment variable as duration or default if not set
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
