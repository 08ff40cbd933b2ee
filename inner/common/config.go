package common

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultCountriesUrl справочник world-cities, из которого проецируется список стран
const DefaultCountriesUrl = "https://pkgstore.datahub.io/core/world-cities/world-cities_json/data/5b3dd46ad10990bca47b04b4739a02ba/world-cities_json.json"

// Общая конфигурация всего приложения
type Config struct {
	AppName        string `validate:"required"`
	AppVersion     string `validate:"required"`
	AppPort        string
	LogLevel       string
	LogDevelopMode bool
	// каталог, в котором хранятся сериализованные коллекции
	DataDir string `validate:"required"`
	// адрес внешнего справочника стран
	CountriesUrl string
}

// Получение конфигурации из .env файла или переменных окружения
func GetConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	var cfg = Config{
		AppName:        getEnvOrDefault("APP_NAME", "staffdir"),
		AppVersion:     getEnvOrDefault("APP_VERSION", "1.0.0"),
		AppPort:        getEnvOrDefault("APP_PORT", "8080"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "INFO"),
		LogDevelopMode: os.Getenv("LOG_DEVELOP_MODE") == "true",
		DataDir:        getEnvOrDefault("DATA_DIR", "data"),
		CountriesUrl:   getEnvOrDefault("COUNTRIES_URL", DefaultCountriesUrl),
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
