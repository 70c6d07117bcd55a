package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config concentra toda la configuración del proceso. Se construye una sola
// vez en main y se pasa por referencia; ningún componente vuelve a leer env.
type Config struct {
	Port        string
	Environment string // local, staging, production

	// JWT
	SecretKey string

	// Postgres. Si queda vacío, el router usa repos in-memory (modo dev).
	DatabaseURL string

	// Cloudinary (solo shape/URLs; la subida la hace otro servicio)
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// SendGrid (consumido por el servicio de notificaciones, fuera de este repo)
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Si true, el resolver de límites de plan permite todo (modo dev).
	AllowAllLimits bool

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env si existe y arma la Config desde el entorno.
func Load() Config {
	// .env es opcional; en producción las vars vienen del entorno directo.
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", "8080"),
		Environment: getenv("ENVIRONMENT", "local"),

		SecretKey: getenv("SECRET_KEY", ""),

		DatabaseURL: getenv("DATABASE_URL", os.Getenv("DB_DSN")),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  os.Getenv("SENDGRID_FROM_NAME"),

		AllowAllLimits: getenvBool("ALLOW_ALL_LIMITS", false),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
		AppName:   getenv("APP_NAME", "gallos-breeding-api"),
	}
}

// IsLocal reporta si corremos en modo dev (habilita X-Debug-User-ID).
func (c Config) IsLocal() bool {
	return strings.EqualFold(c.Environment, "local")
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
