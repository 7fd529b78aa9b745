package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	AWS       AWSConfig       `mapstructure:"aws"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServiceConfig struct {
	Port         string        `mapstructure:"port"`
	LogLevel     string        `mapstructure:"logLevel"`
	LogToFile    bool          `mapstructure:"logToFile"`
	LogFile      string        `mapstructure:"logFile"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
	MaxConns         int32  `mapstructure:"maxConns"`
	MinConns         int32  `mapstructure:"minConns"`
	// Migrate applies the embedded goose migrations on startup.
	Migrate bool `mapstructure:"migrate"`
	// SecretID names an AWS Secrets Manager secret holding the database credentials.
	SecretID string `mapstructure:"secretId"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
	AllowedMethods []string `mapstructure:"allowedMethods"`
	AllowedHeaders []string `mapstructure:"allowedHeaders"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.port", "3333")
	v.SetDefault("service.logLevel", "info")
	v.SetDefault("service.logFile", "invest.log")
	v.SetDefault("service.readTimeout", 30*time.Second)
	v.SetDefault("service.writeTimeout", 30*time.Second)

	v.SetDefault("databases.sql.host", "localhost")
	v.SetDefault("databases.sql.port", "5432")
	v.SetDefault("databases.sql.maxConns", 5)
	v.SetDefault("databases.sql.minConns", 1)

	v.SetDefault("aws.region", "us-east-1")

	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE"})
	v.SetDefault("cors.allowedHeaders", []string{"Content-Type", "Authorization"})
}

// LoadConfig reads appsettings.yaml from path and, when env is not empty, merges
// appsettings.<env>.yaml on top of it. Environment variables win over both files,
// using "_" in place of "." (e.g. DATABASES_SQL_PASSWORD).
func LoadConfig(path string, env string) (*Config, error) {
	var cfg Config

	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	if env != "" {
		v.SetConfigName("appsettings." + env)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to merge %s settings: %w", env, err)
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
