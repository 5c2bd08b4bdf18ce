// Package config builds per-app configuration from the environment so main
// stays lean. A .env file is honored when present (local development); real
// deployments set variables directly.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Log is the logging section shared by every app.
type Log struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=text"`
}

// API configures the backend API process.
type API struct {
	Addr string `env:"API_HTTP_ADDR,default=:8081"`
	Log  Log

	// CORSOrigins is a semicolon-separated origin list; "*" allows all.
	CORSOrigins []string `env:"API_CORS_ORIGINS,default=*"`

	// PostgresURL switches the notes store from memory to Postgres when set.
	PostgresURL string `env:"DATABASE_URL"`
	// RedisURL registers a Redis readiness check when set.
	RedisURL string `env:"REDIS_URL"`

	JWTSigningKey string        `env:"JWT_SIGNING_KEY,default=dev-secret-change-in-production"`
	JWTTTL        time.Duration `env:"JWT_TTL,default=1h"`

	// Demo login credentials for the scaffold's auth example. The password
	// is bcrypt-hashed at startup; override both in any real deployment.
	DemoUser     string `env:"DEMO_USER,default=demo"`
	DemoPassword string `env:"DEMO_PASSWORD,default=stackpad"`
}

// Web configures the frontend process.
type Web struct {
	Addr string `env:"WEB_HTTP_ADDR,default=:8080"`
	Log  Log

	// APIBaseURL is where /api/* requests are proxied; the default targets
	// the api container by name on the compose network.
	APIBaseURL string `env:"API_BASE_URL,default=http://api:8081"`
}

// LoadAPI decodes the API app configuration from the environment.
func LoadAPI() (API, error) {
	loadDotenv()
	var cfg API
	if err := envdecode.Decode(&cfg); err != nil {
		return API{}, fmt.Errorf("decode api config: %w", err)
	}
	return cfg, nil
}

// LoadWeb decodes the web app configuration from the environment.
func LoadWeb() (Web, error) {
	loadDotenv()
	var cfg Web
	if err := envdecode.Decode(&cfg); err != nil {
		return Web{}, fmt.Errorf("decode web config: %w", err)
	}
	return cfg, nil
}

// loadDotenv reads .env if one exists; a missing file is not an error.
func loadDotenv() {
	_ = godotenv.Load()
}
