package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL
	"github.com/maynagashev/partsorganizer/internal/handlers"
	appmiddleware "github.com/maynagashev/partsorganizer/internal/middleware"
	"github.com/maynagashev/partsorganizer/internal/repository"
	"github.com/maynagashev/partsorganizer/internal/services"
	"github.com/maynagashev/partsorganizer/internal/token"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second

	// Стартовый административный аккаунт.
	bootstrapAdminUsername = "admin"
	bootstrapAdminPassword = "admin123"
)

// Переменная для возможности подмены в тестах.
var newPostgresDB = repository.NewPostgresDB

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db              *sqlx.DB
	authService     services.AuthService
	authHandler     *handlers.AuthHandler
	locationHandler *handlers.LocationHandler
	partHandler     *handlers.PartHandler
	tokenService    *token.Service
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера Parts Organizer...")

	cfg := parseFlags()

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Создаем стартовый административный аккаунт, если его еще нет
	seedAdmin(deps.authService)

	// Настройка роутера
	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)

	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTP-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}

	// 2. Инициализация схемы (таблицы создаются, если их еще нет)
	if err = repository.InitSchema(context.Background(), deps.db); err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке инициализации схемы: %v", dbCloseErr)
		}
		return nil, err
	}

	// 3. Сервис токенов (единственный владелец секрета)
	deps.tokenService = token.NewService(cfg.JWTSecret, token.DefaultTTL)

	// 4. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	locationRepo := repository.NewPostgresLocationRepository(deps.db)
	partRepo := repository.NewPostgresPartRepository(deps.db)

	// 5. Создание сервисов
	deps.authService = services.NewAuthService(userRepo, deps.tokenService)
	inventoryService := services.NewInventoryService(locationRepo, partRepo)

	// 6. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(deps.authService)
	deps.locationHandler = handlers.NewLocationHandler(inventoryService)
	deps.partHandler = handlers.NewPartHandler(inventoryService)

	return deps, nil
}

// seedAdmin создает стартовый аккаунт admin/admin123, если его еще нет.
// Занятое имя - штатная ситуация при повторном старте, ее просто логируем.
func seedAdmin(authService services.AuthService) {
	err := authService.Register(context.Background(), bootstrapAdminUsername, bootstrapAdminPassword)
	switch {
	case err == nil:
		log.Printf("Стартовый аккаунт '%s' успешно создан", bootstrapAdminUsername)
	case errors.Is(err, services.ErrUsernameTaken):
		log.Printf("Стартовый аккаунт '%s' уже существует", bootstrapAdminUsername)
	default:
		log.Printf("Ошибка создания стартового аккаунта '%s': %v", bootstrapAdminUsername, err)
	}
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	// Определяем базовый маршрут /api
	r.Route("/api", func(r chi.Router) {
		// Публичный маршрут входа
		r.Post("/login", deps.authHandler.Login)

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			// Применяем middleware аутентификации ко всей группе
			r.Use(appmiddleware.Authenticator(deps.tokenService))

			r.Get("/me", deps.authHandler.Me)

			// Маршруты для мест хранения
			r.Route("/locations", func(r chi.Router) {
				r.Get("/", deps.locationHandler.List)
				r.Post("/", deps.locationHandler.Create)
				r.Get("/{id}", deps.locationHandler.GetByID)
				r.Get("/{id}/parts", deps.locationHandler.ListParts)
			})

			// Маршруты для деталей
			r.Route("/parts", func(r chi.Router) {
				r.Get("/", deps.partHandler.List)
				r.Post("/", deps.partHandler.Create)
				r.Get("/location/{locationName}", deps.partHandler.ListByLocationName)
				r.Get("/{id}", deps.partHandler.GetByID)
			})
		})
	})
	return r
}
