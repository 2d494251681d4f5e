package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string        `mapstructure:"port"`
	MongoURI      string        `mapstructure:"MONGODB_URI"`
	MongoDatabase string        `mapstructure:"mongo_database"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	FrontendURL   string        `mapstructure:"frontend_url"`
	SMTP          SMTPConfig    `mapstructure:"smtp"`
	Cloudinary    CloudConfig   `mapstructure:"cloudinary"`
	Cleanup       CleanupConfig `mapstructure:"cleanup"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"SMTP_USERNAME"`
	Password string `mapstructure:"SMTP_PASSWORD"`
	From     string `mapstructure:"from"`
}

type CloudConfig struct {
	URL          string `mapstructure:"CLOUDINARY_URL"`
	UploadFolder string `mapstructure:"upload_folder"`
	MaxWidth     int    `mapstructure:"max_width"`
	JPEGQuality  int    `mapstructure:"jpeg_quality"`
}

type CleanupConfig struct {
	EmployeeSweepSpec    string `mapstructure:"employee_sweep_spec"`
	ProjectSweepSpec     string `mapstructure:"project_sweep_spec"`
	ProjectRetentionDays int    `mapstructure:"project_retention_days"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Secrets come from the environment, never from the file.
	v.BindEnv("MONGODB_URI")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("smtp.SMTP_USERNAME", "SMTP_USERNAME")
	v.BindEnv("smtp.SMTP_PASSWORD", "SMTP_PASSWORD")
	v.BindEnv("cloudinary.CLOUDINARY_URL", "CLOUDINARY_URL")

	v.SetDefault("port", "8080")
	v.SetDefault("mongo_database", "projectflow")
	v.SetDefault("cloudinary.max_width", 1200)
	v.SetDefault("cloudinary.jpeg_quality", 80)
	v.SetDefault("cloudinary.upload_folder", "subtasks")
	v.SetDefault("cleanup.employee_sweep_spec", "@every 1m")
	v.SetDefault("cleanup.project_sweep_spec", "@hourly")
	v.SetDefault("cleanup.project_retention_days", 30)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &config, nil
}
