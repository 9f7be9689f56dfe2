package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type JWTConfig struct {
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type CookieConfig struct {
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
	Secure bool   `yaml:"secure"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type RetentionConfig struct {
	LogMaxAge     string `yaml:"log_max_age"`
	SweepInterval string `yaml:"sweep_interval"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	JWT       JWTConfig       `yaml:"jwt"`
	OTP       OTPConfig       `yaml:"otp"`
	Cookie    CookieConfig    `yaml:"cookie"`
	Casbin    CasbinConfig    `yaml:"casbin"`
	Retention RetentionConfig `yaml:"retention"`
}

// Config is the fully resolved runtime configuration. Tunables come from the
// yaml file; secrets and connection strings come from the environment.
type Config struct {
	Port    string
	GinMode string

	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	JWTIssuer  string
	SessionTTL time.Duration

	OTPTTL    time.Duration
	OTPLength int

	CookieName   string
	CookieDomain string
	CookieSecure bool

	ResendAPIKey string
	MailFrom     string

	AdminUsername     string
	AdminPasswordHash string

	CasbinModelPath string

	LogMaxAge     time.Duration
	SweepInterval time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

func LoadFrom(path string) (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	logMaxAge, err := time.ParseDuration(configFile.Retention.LogMaxAge)
	if err != nil {
		return nil, fmt.Errorf("invalid log retention age: %w", err)
	}

	sweepInterval, err := time.ParseDuration(configFile.Retention.SweepInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid retention sweep interval: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	return &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		DSN:               dsn,
		RedisAddr:         env("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           0,
		JWTSecret:         secret,
		JWTIssuer:         configFile.JWT.Issuer,
		SessionTTL:        sessionTTL,
		OTPTTL:            otpTTL,
		OTPLength:         configFile.OTP.Length,
		CookieName:        configFile.Cookie.Name,
		CookieDomain:      configFile.Cookie.Domain,
		CookieSecure:      configFile.Cookie.Secure,
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		MailFrom:          os.Getenv("RESEND_FROM_EMAIL"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CasbinModelPath:   configFile.Casbin.ModelPath,
		LogMaxAge:         logMaxAge,
		SweepInterval:     sweepInterval,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
