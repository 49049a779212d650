package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/maynagashev/partsorganizer/internal/middleware"
	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/services"
)

// AuthService определяет интерфейс для сервиса аутентификации.
// Это позволит нам легко подменять реализацию (например, для тестов).
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service AuthService // Зависимость от интерфейса, а не конкретной реализации
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Login обрабатывает запрос на вход пользователя.
// На успех возвращает токен и публичные данные пользователя.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	// Декодируем JSON из тела запроса
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		respondError(w, http.StatusBadRequest, "неверный формат запроса")
		return
	}

	// Валидация входных данных (простая)
	if req.Username == "" || req.Password == "" {
		log.Printf("[AuthHandler] Пустое имя пользователя или пароль при входе")
		respondError(w, http.StatusBadRequest, "имя пользователя и пароль не могут быть пустыми")
		return
	}

	log.Printf("[AuthHandler] Попытка входа пользователя: %s", req.Username)

	signedToken, user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
			return
		}
		log.Printf("[AuthHandler] Внутренняя ошибка при входе '%s': %v", req.Username, err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, models.LoginResponse{Token: signedToken, User: user})
	log.Printf("[AuthHandler] Успешный вход для: %s", req.Username)
}

// Me возвращает идентичность текущего пользователя.
// Идентичность берется из проверенного токена, без обращения к БД.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetAuthUserFromContext(r.Context())
	if !ok {
		log.Printf("[AuthHandler:Me] Не удалось получить пользователя из контекста")
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, models.MeResponse{User: user})
}
