package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const configPathEnv = "STORE_CONFIG_PATH"

type StoreConfig struct {
	Env              string `yaml:"env" env:"STORE_ENV" env-default:"local"`
	HTTPServer       `yaml:"http_server"`
	GRPCServer       `yaml:"grpc_server"`
	StoreDB          `yaml:"store_db"`
	ApplicationStore `yaml:"application_store"`
	Redis            `yaml:"redis"`
	KafkaService     `yaml:"kafka-service"`
	LogConfig        `yaml:"log_config"`
	Provisioning     `yaml:"provisioning"`
}

type HTTPServer struct {
	Host         string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type StoreDB struct {
	Dsn            string `yaml:"dsn" env:"STORE_DB_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"STORE_DB_MIGRATIONS" env-default:"migrations"`
	MaxOpenConns   int    `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns   int    `yaml:"max_idle_conns" env-default:"5"`
}

// ApplicationStore selects the backend holding applications: "postgres" or "redis".
type ApplicationStore struct {
	Driver string `yaml:"driver" env:"APPLICATION_STORE_DRIVER" env-default:"postgres"`
}

type Redis struct {
	Addr      string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password  string `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env-default:"storefront"`
}

type KafkaService struct {
	Host    string `yaml:"host" env:"KAFKA_HOST"`
	Port    string `yaml:"port" env:"KAFKA_PORT"`
	Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
}

type Provisioning struct {
	SlugAttempts    int           `yaml:"slug_attempts" env-default:"5"`
	SlugSuffixLen   int           `yaml:"slug_suffix_length" env-default:"6"`
	DefaultCurrency string        `yaml:"default_currency" env-default:"SAR"`
	DefaultLanguage string        `yaml:"default_language" env-default:"ar"`
	RetryInterval   time.Duration `yaml:"retry_interval" env:"PROVISIONING_RETRY_INTERVAL" env-default:"1m"`
}

func (k KafkaService) Brokers() []string {
	return []string{fmt.Sprintf("%s:%s", k.Host, k.Port)}
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*StoreConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg StoreConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch cfg.ApplicationStore.Driver {
	case "postgres", "redis":
	default:
		return nil, fmt.Errorf("unknown application_store.driver %q", cfg.ApplicationStore.Driver)
	}
	return &cfg, nil
}

func MustLoad() *StoreConfig {
	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		log.Fatalf("%s was not found\n", configPathEnv)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	return cfg
}
