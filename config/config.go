package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	Database DatabaseConfig

	// Completion service
	AI AIConfig

	// Outbound voice calls
	Telephony TelephonyConfig

	// Chat behaviour
	Chat ChatConfig

	// Security
	Security SecurityConfig
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type AIConfig struct {
	APIKey      string
	APIURL      string
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

type TelephonyConfig struct {
	AccountSID       string
	AuthToken        string
	FromNumber       string
	EmergencyContact string
	VoiceURL         string
}

type ChatConfig struct {
	DoctorName     string
	HistoryLimit   int
	SessionTimeout time.Duration
}

type SecurityConfig struct {
	AllowedOrigins []string
	TrustedProxies []string
}

var cfg *Config

// Load initializes the configuration
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "therapist_chatbot"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		AI: AIConfig{
			APIKey:      getEnv("GROQ_API_KEY", ""),
			APIURL:      getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
			Model:       getEnv("AI_MODEL", "llama3-70b-8192"),
			MaxTokens:   getEnvAsInt("AI_MAX_TOKENS", 350),
			Temperature: getEnvAsFloat("AI_TEMPERATURE", 0.7),
			TopP:        getEnvAsFloat("AI_TOP_P", 0.9),
			Timeout:     getEnvAsDuration("AI_TIMEOUT", "30s"),
		},

		Telephony: TelephonyConfig{
			AccountSID:       getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:        getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber:       getEnv("TWILIO_FROM_NUMBER", ""),
			EmergencyContact: getEnv("EMERGENCY_CONTACT", ""),
			VoiceURL:         getEnv("TWILIO_VOICE_URL", "http://demo.twilio.com/docs/voice.xml"),
		},

		Chat: ChatConfig{
			DoctorName:     getEnv("DOCTOR_NAME", "Dr. Mustafa Badshah"),
			HistoryLimit:   getEnvAsInt("CHAT_HISTORY_LIMIT", 50),
			SessionTimeout: getEnvAsDuration("CHAT_SESSION_TIMEOUT", "24h"),
		},

		Security: SecurityConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8501"}),
			TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
	}

	// Validate configuration
	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	// Simple comma-separated parsing
	return strings.Split(value, ",")
}

func validate() error {
	// Validate required fields
	if cfg.Database.URI == "" {
		if cfg.Database.Host == "" || cfg.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}

	if cfg.AI.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}

	return nil
}

// TelephonyEnabled reports whether outbound calling is configured.
func (c *Config) TelephonyEnabled() bool {
	return c.Telephony.AccountSID != "" &&
		c.Telephony.AuthToken != "" &&
		c.Telephony.FromNumber != ""
}

// BuildDatabaseURI constructs the MongoDB URI if not provided
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
