package server

import (
	"encoding/json"
	"os"

	"breachdetector/internal/models"
)

type Config struct {
	Port string
	DB   struct {
		Driver string
		Dsn    string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	SMTP struct {
		From string
		Host string
		Port string
	}
	Detection struct {
		MaxFailedLogins int
		SuspiciousHours []int
	}
	Logs struct {
		AuthPath string
		APIPath  string
	}
}

// NewConfig loads config.json over built-in defaults. A missing file is
// fine, the defaults run the demo pipeline as-is. DATABASE_DSN and
// REDIS_ADDR environment variables win over both.
func NewConfig() (Config, error) {
	config := defaultConfig()

	configFile, err := os.Open("config.json")
	if err == nil {
		defer configFile.Close()
		if err := json.NewDecoder(configFile).Decode(&config); err != nil {
			return Config{}, err
		}
		models.InfoLog.Println("configuration extraction successful")
	} else {
		models.InfoLog.Println("config.json not found, using defaults")
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.DB.Dsn = dsn
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		config.Redis.Addr = addr
	}

	return config, nil
}

func defaultConfig() Config {
	var config Config
	config.Port = "8000"
	config.DB.Driver = "sqlite3"
	config.DB.Dsn = "breach_data.db"
	config.SMTP.From = "alerts@breachdetector.local"
	config.Detection.MaxFailedLogins = 3
	config.Detection.SuspiciousHours = []int{0, 1, 2, 3, 4, 5}
	config.Logs.AuthPath = "sample_logs/auth_logs.json"
	config.Logs.APIPath = "sample_logs/api_logs.json"
	return config
}
