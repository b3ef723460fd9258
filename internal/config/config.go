package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RewardsConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	RewardsDB    `yaml:"rewards_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Portal       `yaml:"portal"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RewardsDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
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

type Portal struct {
	// InviteBase is the public origin used to build referral share links.
	InviteBase string `yaml:"invite_base" env:"INVITE_BASE"`
}

func MustLoad() *RewardsConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REWARDS_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REWARDS_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RewardsConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
