package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ENV struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	Port          string
	AppAuthKey    string
	AppEncKey     string
	CSRFKey       string
	UploadDir     string
	UploadBaseURL string
	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string
	APP_URL       string
	APP_ENV       string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("No .env file found, relying on process environment")
	}

	return ENV{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		Port:          os.Getenv("APP_PORT"),
		AppAuthKey:    os.Getenv("APP_AUTH_KEY"),
		AppEncKey:     os.Getenv("APP_ENC_KEY"),
		CSRFKey:       os.Getenv("CSRF_KEY"),
		UploadDir:     getEnvOr("UPLOAD_DIR", "uploads"),
		UploadBaseURL: getEnvOr("UPLOAD_BASE_URL", "/uploads"),
		EmailHost:     os.Getenv("EMAIL_HOST"),
		EmailPort:     os.Getenv("EMAIL_PORT"),
		EmailUsername: os.Getenv("EMAIL_USERNAME"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_USERNAME"),
		APP_URL:       os.Getenv("APP_URL"),
		APP_ENV:       os.Getenv("APP_ENV"),
	}

}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var LoadENV = LoadEnv()
