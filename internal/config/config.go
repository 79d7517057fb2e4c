package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type SettlementConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	SettlementDB `yaml:"settlement_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	AuthConfig   `yaml:"auth"`
	Migrations   `yaml:"migrations"`
	Sweep        `yaml:"sweep"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SettlementDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type AuthConfig struct {
	ServiceToken string `yaml:"service_token" env:"SERVICE_TOKEN"`
}

type Migrations struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Sweep struct {
	Interval  time.Duration `yaml:"interval" env-default:"1m"`
	BatchSize int           `yaml:"batch_size" env-default:"200"`
}

func MustLoad() *SettlementConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SETTLEMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SETTLEMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg SettlementConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
