package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Auth     Auth     `yaml:"auth"`
	Log      Log      `yaml:"log"`
}

type Server struct {
	Port           string `yaml:"port"`
	FrontendOrigin string `yaml:"frontend_origin"`
}

type Database struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads an optional yaml file and then applies environment
// overrides, so a bare deployment can run on env vars alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		file, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	overrideEnv(&cfg.Server.Port, "PORT")
	overrideEnv(&cfg.Server.FrontendOrigin, "FRONTEND_URL")
	overrideEnv(&cfg.Database.Host, "DB_HOST")
	overrideEnv(&cfg.Database.Port, "DB_PORT")
	overrideEnv(&cfg.Database.User, "DB_USER")
	overrideEnv(&cfg.Database.Password, "DB_PASSWORD")
	overrideEnv(&cfg.Database.Name, "DB_NAME")
	overrideEnv(&cfg.Database.SSLMode, "DB_SSLMODE")
	overrideEnv(&cfg.Auth.JWTSecret, "JWT_SECRET")
	overrideEnv(&cfg.Log.Level, "LOG_LEVEL")
	overrideEnv(&cfg.Log.File, "LOG_FILE")

	if cfg.Server.Port == "" {
		cfg.Server.Port = "3001"
	}
	if cfg.Server.FrontendOrigin == "" {
		cfg.Server.FrontendOrigin = "http://localhost:3000"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	return cfg, nil
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
