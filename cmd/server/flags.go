package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const (
	// Порт по умолчанию для HTTP-сервера.
	defaultServerPort = "3000"

	// Небезопасный секрет по умолчанию - обязательно переопределить в продакшене.
	defaultJWTSecret = "your-secret-key-change-this-in-production"

	// Переменные окружения.
	envServerPort  = "PORT"
	envJWTSecret   = "JWT_SECRET"
	envDatabaseDSN = "DATABASE_DSN"

	// Переменные окружения для БД (значения по умолчанию из docker-compose).
	envDBUser     = "POSTGRES_USER"
	envDBPass     = "POSTGRES_PASSWORD" //nolint:gosec // Ложное срабатывание, это имя переменной окружения
	envDBName     = "POSTGRES_DB"
	envDBHost     = "POSTGRES_HOST"
	envDBPort     = "POSTGRES_PORT"
	defaultDBUser = "partsorganizer"
	defaultDBPass = "secret"
	defaultDBName = "partsorganizer"
	defaultDBHost = "localhost"
	defaultDBPort = "5432"
)

// config хранит конфигурацию сервера.
type config struct {
	Port        string
	JWTSecret   string
	DatabaseDSN string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config.
// Приоритет: флаг, затем переменная окружения, затем значение по умолчанию.
func parseFlags() *config {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска HTTP-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секрет для подписи токенов (env: %s)", envJWTSecret))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s или переменные POSTGRES_*)", envDatabaseDSN))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	if cfg.Port == "" {
		cfg.Port = getEnv(envServerPort, defaultServerPort)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = getEnv(envJWTSecret, defaultJWTSecret)
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Printf("ВНИМАНИЕ: используется секрет токенов по умолчанию. Установите %s в продакшене!", envJWTSecret)
	}
	if cfg.DatabaseDSN == "" {
		if value, ok := os.LookupEnv(envDatabaseDSN); ok {
			cfg.DatabaseDSN = value
		} else {
			cfg.DatabaseDSN = getDSNFromEnv()
		}
	}

	return cfg
}

// getDSNFromEnv формирует строку подключения к БД из переменных окружения.
func getDSNFromEnv() string {
	user := getEnv(envDBUser, defaultDBUser)
	password := getEnv(envDBPass, defaultDBPass)
	host := getEnv(envDBHost, defaultDBHost)
	port := getEnv(envDBPort, defaultDBPort)
	dbname := getEnv(envDBName, defaultDBName)

	// sslmode=disable - небезопасно для продакшена, но удобно для локальной разработки с Docker
	//nolint:nosprintfhostport // DSN - это URL, а не просто host:port
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, dbname)
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	log.Printf("Переменная окружения '%s' не установлена, используется значение по умолчанию: '%s'", key, fallback)
	return fallback
}
