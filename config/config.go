package config

import (
    "os"
    "strconv"

    "github.com/joho/godotenv"
)

type Config struct {
    UserAgent      string
    RequestTimeout int // seconds
    SaveRoot       string
}

func Load() *Config {
    // Load .env file if it exists
    godotenv.Load()

    return &Config{
        UserAgent:      getEnv("USER_AGENT", ""),
        RequestTimeout: getEnvInt("REQUEST_TIMEOUT", 10),
        SaveRoot:       getEnv("SAVE_ROOT", ""),
    }
}

func getEnv(key, defaultVal string) string {
    if val := os.Getenv(key); val != "" {
        return val
    }
    return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
    if val := os.Getenv(key); val != "" {
        if n, err := strconv.Atoi(val); err == nil {
            return n
        }
    }
    return defaultVal
}
