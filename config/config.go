package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Storage  StorageConfig  `yaml:"storage"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Payment  PaymentConfig  `yaml:"payment"`
	Reviews  ReviewsConfig  `yaml:"reviews"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	EventsTopic        string   `yaml:"events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// Enabled reports whether events should be published at all.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.EventsTopic != ""
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
}

type CatalogConfig struct {
	Seed         uint64 `yaml:"seed"`
	Drivers      int    `yaml:"drivers"`
	Buddies      int    `yaml:"buddies"`
	Hotels       int    `yaml:"hotels"`
	DefaultLimit int    `yaml:"default_limit"`
}

type PaymentConfig struct {
	LatencyMillis int `yaml:"latency_ms"`
}

func (p PaymentConfig) Latency() time.Duration {
	return time.Duration(p.LatencyMillis) * time.Millisecond
}

type ReviewsConfig struct {
	AutoVerify *bool `yaml:"auto_verify"`
}

// Verify reports the default verified flag for new reviews.
func (r ReviewsConfig) Verify() bool {
	if r.AutoVerify == nil {
		return true
	}
	return *r.AutoVerify
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		c.HTTP.Address = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("CATALOG_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Catalog.Seed = seed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageMemory
	}
	if c.Catalog.Seed == 0 {
		c.Catalog.Seed = 42
	}
	if c.Catalog.Drivers == 0 {
		c.Catalog.Drivers = 200
	}
	if c.Catalog.Buddies == 0 {
		c.Catalog.Buddies = 300
	}
	if c.Catalog.Hotels == 0 {
		c.Catalog.Hotels = 60
	}
	if c.Catalog.DefaultLimit == 0 {
		c.Catalog.DefaultLimit = 10
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "tripmate:"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "tripmate-notifier"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Catalog.Drivers < 0 || c.Catalog.Buddies < 0 || c.Catalog.Hotels < 0 {
		return errors.New("catalog sizes must not be negative")
	}
	return nil
}
