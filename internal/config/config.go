package config

import (
  "fmt"
  "os"
  "strconv"
  "time"

  "github.com/joho/godotenv"

  "github.com/yungbote/athena-backend/internal/logger"
)

type PostgresConfig struct {
  Host      string
  Port      string
  User      string
  Password  string
  Name      string
}

func (p PostgresConfig) DSN() string {
  return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.Name)
}

type OpenAIConfig struct {
  APIKey      string
  BaseURL     string
  ChatModel   string
  Timeout     time.Duration
}

type Config struct {
  Port        string
  LogMode     string
  Postgres    PostgresConfig
  OpenAI      OpenAIConfig
}

// Load reads the whole process configuration once. Components receive their
// slice of it through constructors instead of reading the environment themselves.
func Load(log *logger.Logger) (*Config, error) {
  if err := godotenv.Load(); err != nil {
    log.Debug("No .env file found, relying on process environment")
  }

  cfg := &Config{
    Port:    getEnv("PORT", "3001", log),
    LogMode: getEnv("LOG_MODE", "development", log),
    Postgres: PostgresConfig{
      Host:     getEnv("POSTGRES_HOST", "localhost", log),
      Port:     getEnv("POSTGRES_PORT", "5432", log),
      User:     getEnv("POSTGRES_USER", "postgres", log),
      Password: getEnv("POSTGRES_PASSWORD", "", log),
      Name:     getEnv("POSTGRES_NAME", "athena", log),
    },
    OpenAI: OpenAIConfig{
      APIKey:    getEnv("OPENAI_API_KEY", "", log),
      BaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1", log),
      ChatModel: getEnv("OPENAI_CHAT_MODEL", "gpt-4.1-mini", log),
      Timeout:   time.Duration(getEnvAsInt("OPENAI_TIMEOUT_SECONDS", 120, log)) * time.Second,
    },
  }

  if cfg.OpenAI.APIKey == "" {
    return nil, fmt.Errorf("OPENAI_API_KEY is not set")
  }
  return cfg, nil
}

func getEnv(key, defaultVal string, log *logger.Logger) string {
  val, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Environment variable not found, using default", "env_var", key, "default", defaultVal)
    }
    return defaultVal
  }
  return val
}

func getEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
  valStr, ok := os.LookupEnv(key)
  if !ok {
    return defaultVal
  }
  i, err := strconv.Atoi(valStr)
  if err != nil {
    if log != nil {
      log.Debug("Environment variable could not be parsed as int, using default", "env_var", key, "providedVal", valStr, "defaultVal", defaultVal, "error", err)
    }
    return defaultVal
  }
  return i
}
