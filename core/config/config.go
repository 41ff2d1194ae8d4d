package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpiryMinutes   int    `mapstructure:"expiry_minutes"`
	RefreshExpiryHr int    `mapstructure:"refresh_expiry_hours"`
}

type GoogleOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type ScheduleConfig struct {
	DayStart          string `mapstructure:"day_start"`    // "07:00"
	DayEnd            string `mapstructure:"day_end"`      // "17:00"
	GranularityMin    int    `mapstructure:"granularity_minutes"`
	WorkingDays       string `mapstructure:"working_days"` // comma-separated, e.g. "monday,tuesday,..."
	RecheckDebounceMS int    `mapstructure:"recheck_debounce_ms"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server   ServerConfig      `mapstructure:"server"`
	Database DatabaseConfig    `mapstructure:"database"`
	Redis    RedisConfig       `mapstructure:"redis"`
	JWT      JWTConfig         `mapstructure:"jwt"`
	Google   GoogleOAuthConfig `mapstructure:"google"`
	S3       S3Config          `mapstructure:"s3"`
	Schedule ScheduleConfig    `mapstructure:"schedule"`
	Log      LogConfig         `mapstructure:"log"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present), then environment variables with the
// ROADWISE_ prefix, over built-in defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ROADWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	mu.Lock()
	instance = &cfg
	mu.Unlock()
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "roadwise")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.expiry_minutes", 60)
	v.SetDefault("jwt.refresh_expiry_hours", 168)

	v.SetDefault("google.redirect_url", "http://localhost:7070/api/v1/public/auth/google/callback")

	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "roadwise-exports")

	v.SetDefault("schedule.day_start", "07:00")
	v.SetDefault("schedule.day_end", "17:00")
	v.SetDefault("schedule.granularity_minutes", 30)
	v.SetDefault("schedule.working_days", "monday,tuesday,wednesday,thursday,friday")
	v.SetDefault("schedule.recheck_debounce_ms", 300)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Get returns the loaded config. It panics when called before Load;
// prefer GetSafe in paths that can run early.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the loaded config and whether Load has run.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
