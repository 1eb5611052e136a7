package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	OAuth     OAuthConfig
	Storage   StorageConfig
	Upload    UploadConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Bank      BankConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Absolute origin used for login callback URLs and relative media paths.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Bangkok"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Bangkok"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// Google sign-in is disabled when ClientID is empty.
type OAuthConfig struct {
	GoogleClientID     string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	GoogleClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	GoogleRedirectURL  string `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8080/api/auth/google/callback"`
}

func (c OAuthConfig) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}

type StorageConfig struct {
	Provider string `envconfig:"STORAGE_PROVIDER" default:"local"` // s3 | gcs | local
	Bucket   string `envconfig:"STORAGE_BUCKET" default:""`
	Region   string `envconfig:"STORAGE_REGION" default:"ap-southeast-1"`
	Prefix   string `envconfig:"STORAGE_PREFIX" default:"e-learning"`
	// CDN or bucket host used to build public URLs. Empty means provider default.
	PublicBaseURL   string        `envconfig:"STORAGE_PUBLIC_BASE_URL" default:""`
	CredentialsFile string        `envconfig:"STORAGE_CREDENTIALS_FILE" default:""`
	LocalDir        string        `envconfig:"STORAGE_LOCAL_DIR" default:"./uploads"`
	UploadTimeout   time.Duration `envconfig:"STORAGE_UPLOAD_TIMEOUT" default:"30s"`
}

// One byte limit per upload contract.
type UploadConfig struct {
	CheckoutSlipMaxBytes int64 `envconfig:"SLIP_CHECKOUT_MAX_BYTES" default:"2097152"`
	OrderSlipMaxBytes    int64 `envconfig:"SLIP_ORDERS_MAX_BYTES" default:"10485760"`
	ExamFileMaxBytes     int64 `envconfig:"EXAM_FILE_MAX_BYTES" default:"10485760"`
}

// Redis is optional; catalog reads go straight to Postgres when Addr is empty.
type CacheConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	CatalogTTL    time.Duration `envconfig:"CACHE_CATALOG_TTL" default:"5m"`
}

func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

type RateLimitConfig struct {
	CouponRPS   float64 `envconfig:"RATE_LIMIT_COUPON_RPS" default:"2"`
	CouponBurst int     `envconfig:"RATE_LIMIT_COUPON_BURST" default:"10"`
}

// Static transfer details shown on the checkout page.
type BankConfig struct {
	AccountNumber string `envconfig:"BANK_ACCOUNT_NUMBER" default:"1078898751"`
	AccountName   string `envconfig:"BANK_ACCOUNT_NAME" default:"นาย เชษฐา พวงบุบผา"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Bangkok",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Storage: StorageConfig{
			Provider:      "local",
			Prefix:        "e-learning",
			LocalDir:      "./testdata/uploads",
			UploadTimeout: 5 * time.Second,
		},
		Upload: UploadConfig{
			CheckoutSlipMaxBytes: 2 << 20,
			OrderSlipMaxBytes:    10 << 20,
			ExamFileMaxBytes:     10 << 20,
		},
		Cache: CacheConfig{
			CatalogTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{
			CouponRPS:   100,
			CouponBurst: 100,
		},
		Bank: BankConfig{
			AccountNumber: "1078898751",
			AccountName:   "นาย เชษฐา พวงบุบผา",
		},
	}
}
