package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultLeadEndpoint is the cloud function that receives contact form submissions
const DefaultLeadEndpoint = "https://functions.poehali.dev/d7e41c14-bf02-461c-8d94-ed5329c82630"

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	LogLevel    string
	// Lead endpoint
	LeadEndpointURL    string
	LeadRequestTimeout time.Duration // zero means no client-side timeout
	// Visitors
	VisitorTTL   time.Duration
	VisitorLimit int
	// Sample documents
	DocumentsDir string
	// Other
	AllowedOrigins []string
	SecureCookies  bool
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string

	// EnvFileLoaded reports whether a .env file was found
	EnvFileLoaded bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	envLoaded := godotenv.Load() == nil

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        environment,
		AppURL:             strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LeadEndpointURL:    getEnv("LEAD_ENDPOINT_URL", DefaultLeadEndpoint),
		LeadRequestTimeout: getEnvDuration("LEAD_REQUEST_TIMEOUT", 0),
		VisitorTTL:         getEnvDuration("VISITOR_TTL", 2*time.Hour),
		VisitorLimit:       getEnvInt("VISITOR_LIMIT", 10000),
		DocumentsDir:       getEnv("DOCUMENTS_DIR", "static/documents"),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SecureCookies:      getEnvBool("SECURE_COOKIES", environment == "production"),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
		EnvFileLoaded:      envLoaded,
	}
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Configured reports whether all credentials for the R2 document bucket are present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
