package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	SMTP      SMTPConfig
	Auth      AuthConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port    string
	Timeout time.Duration
}

type DatabaseConfig struct {
	// DSN selects PostgreSQL when set; otherwise SQLitePath is used.
	DSN        string
	SQLitePath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// SettingsTTL bounds how long cached notification settings stay fresh.
	SettingsTTL time.Duration
}

type RabbitMQConfig struct {
	URL       string
	Exchange  string
	PushQueue string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type SchedulerConfig struct {
	// Spec is a standard five-field cron expression.
	Spec     string
	Timezone string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.timeout", "10s")
	viper.SetDefault("database.sqlitepath", "stajdefterim.db")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.settingsttl", "5m")
	viper.SetDefault("rabbitmq.exchange", "notifications.direct")
	viper.SetDefault("rabbitmq.pushqueue", "push.queue")
	viper.SetDefault("smtp.host", "smtp.gmail.com")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("auth.tokenttl", "168h")
	viper.SetDefault("scheduler.spec", "* * * * *")
	viper.SetDefault("scheduler.timezone", "Europe/Istanbul")

	// Read from environment
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
