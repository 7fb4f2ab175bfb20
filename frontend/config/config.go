package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	localBackendURL    = "http://localhost:3000"
	deployedBackendURL = "https://tubulartutor.onrender.com"
)

type Config struct {
	AppName        string
	Env            string
	ServerPort     string
	BackendURL     string
	SessionSecret  string
	SendgridAPIKey string
	ContactEmail   string
	ContactFrom    string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	env := getEnv("ENV", "development")

	// Local builds talk to a local backend, deployed builds to the hosted one.
	backendDefault := localBackendURL
	if env == "production" {
		backendDefault = deployedBackendURL
	}

	return &Config{
		AppName:        getEnv("APP_NAME", "TubularTutor"),
		Env:            env,
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		BackendURL:     getEnv("BACKEND_URL", backendDefault),
		SessionSecret:  getEnv("SESSION_SECRET", "secret"),
		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		ContactEmail:   getEnv("CONTACT_EMAIL", "tutors@tubulartutor.com"),
		ContactFrom:    getEnv("CONTACT_FROM", "noreply@tubulartutor.com"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
