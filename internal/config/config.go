package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("storeops.config")

var (
	ServerPort   string
	GinMode      string
	IsProduction bool
	LogLevel     string

	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string
	SqlitePath string

	JwtSecret  string
	JwtExpires time.Duration
	Issuer     string
	BcryptCost int

	CorsAllowedOrigins []string

	SmtpHost     string
	SmtpPort     int
	SmtpUser     string
	SmtpPass     string
	SmtpFromName string

	SmsEnabled       bool
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioBaseURL    string
	SmsRatePerSec    float64

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string

	FollowUpAfter      time.Duration
	FollowUpInterval   time.Duration
	AuditRetentionDays int
	EmbeddedJobs       bool

	SeedFile           string
	SuperAdminUsername string
	SuperAdminPassword string
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		logger.Infof("no .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	GinMode = getEnv("GIN_MODE", "release")
	IsProduction = getEnv("APP_ENV", "development") == "production"
	LogLevel = getEnv("LOG_LEVEL", "<root>=INFO")

	DbDriver = getEnv("DB_DRIVER", "postgres")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "storeops")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")
	SqlitePath = getEnv("SQLITE_PATH", "storeops.db")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	JwtExpires = getEnvDuration("JWT_EXPIRES", 7*24*time.Hour)
	Issuer = getEnv("JWT_ISSUER", "storeops")
	BcryptCost = getEnvInt("BCRYPT_COST", 10)

	CorsAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))

	SmtpHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	SmtpPort = getEnvInt("SMTP_PORT", 587)
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPass = getEnv("SMTP_PASS", "")
	SmtpFromName = getEnv("SMTP_FROM_NAME", "Lindo Mart")

	SmsEnabled = getEnvBool("SMS_ENABLED", false)
	TwilioAccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	TwilioAuthToken = getEnv("TWILIO_AUTH_TOKEN", "")
	TwilioFromNumber = getEnv("TWILIO_FROM_NUMBER", "")
	TwilioBaseURL = getEnv("TWILIO_BASE_URL", "https://api.twilio.com")
	SmsRatePerSec = getEnvFloat("SMS_RATE_PER_SEC", 1)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "signatures")
	MinioUseSSL = getEnvBool("MINIO_USE_SSL", false)
	MinioPublicURL = getEnv("MINIO_PUBLIC_URL", "")

	FollowUpAfter = getEnvDuration("FOLLOW_UP_AFTER", 24*time.Hour)
	FollowUpInterval = getEnvDuration("FOLLOW_UP_INTERVAL", time.Hour)
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 90)
	EmbeddedJobs = getEnvBool("EMBEDDED_JOBS", true)

	SeedFile = getEnv("SEED_FILE", "")
	SuperAdminUsername = getEnv("SUPERADMIN_USERNAME", "")
	SuperAdminPassword = getEnv("SUPERADMIN_PASSWORD", "")

	if err := loggo.ConfigureLoggers(LogLevel); err != nil {
		logger.Warningf("invalid LOG_LEVEL %q: %v", LogLevel, err)
	}
}

// MailEnabled reports whether SMTP credentials are present.
func MailEnabled() bool {
	return SmtpHost != "" && SmtpUser != "" && SmtpPass != ""
}

func SMSConfigured() bool {
	return SmsEnabled && TwilioAccountSID != "" && TwilioAuthToken != "" && TwilioFromNumber != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
