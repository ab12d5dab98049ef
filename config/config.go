package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rce-oj/dataserver/types"
)

type Config struct {
	Env        string
	ServerPort int `validate:"min=1,max=65535"`
	GraphiQL   bool
	CORS       CORSConfig
	Log        LogConfig
	Database   DatabaseConfig
	ProblemKey types.ProblemKeyField `validate:"oneof=id title"`
}

type DatabaseConfig struct {
	URI         string        `validate:"required"`
	Name        string        `validate:"required"`
	AppName     string
	MaxPoolSize int           `validate:"min=1"`
	Timeout     time.Duration `validate:"min=1ms"`
}

type CORSConfig struct {
	AllowedOrigins []string `validate:"min=1"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=json console"`
}

var validate = validator.New()

// LoadConfig reads the process environment. In development the .env.local
// and .env files are loaded first; variables already set win.
func LoadConfig() Config {
	env := getEnv("ENV", "production")
	if env == "dev" {
		_ = godotenv.Load(".env.local", ".env")
	} else {
		_ = godotenv.Load(".env.local")
	}

	keyField, err := types.ParseProblemKeyField(getEnv("PROBLEM_KEY_FIELD", "id"))
	if err != nil {
		// Left invalid on purpose so Validate reports it.
		keyField = types.ProblemKeyField(getEnv("PROBLEM_KEY_FIELD", ""))
	}

	return Config{
		Env:        env,
		ServerPort: getEnvInt("PORT", 3003),
		GraphiQL:   getEnvBool("GRAPHIQL", true),
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat(env))),
		},
		Database: DatabaseConfig{
			URI:         getEnv("MONGODB_URI", ""),
			Name:        getEnv("MONGODB_DATABASE", "rce"),
			AppName:     getEnv("MONGODB_APP_NAME", "rce-data"),
			MaxPoolSize: getEnvInt("MONGODB_MAX_POOL_SIZE", 50),
			Timeout:     time.Duration(getEnvInt("MONGODB_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		ProblemKey: keyField,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func defaultLogFormat(env string) string {
	if env == "dev" {
		return "console"
	}
	return "json"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
			return defaultValue
		}
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(valueStr)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
