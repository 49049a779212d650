package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/token"
)

// Тип для ключа контекста.
type contextKey string

// Ключ для хранения идентичности пользователя в контексте.
const AuthUserKey contextKey = "authUser"

// TokenVerifier проверяет токен и возвращает идентичность пользователя.
// Интерфейс позволяет подменять сервис токенов в тестах.
type TokenVerifier interface {
	Verify(tokenString string) (models.AuthUser, error)
}

// Authenticator возвращает middleware, проверяющее bearer-токен.
// Секрет не дублируется: проверка делегируется переданному сервису токенов.
func Authenticator(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization: "Bearer <token>"
			tokenString, ok := token.ExtractFromHeader(r.Header.Get("Authorization"))
			if !ok {
				log.Println("[AuthMiddleware] Заголовок Authorization отсутствует или имеет неверный формат")
				unauthorized(w, "требуется аутентификация")
				return
			}

			// Проверяем подпись и срок действия
			user, err := verifier.Verify(tokenString)
			if err != nil {
				log.Printf("[AuthMiddleware] Ошибка проверки токена: %v", err)
				unauthorized(w, "невалидный токен")
				return
			}

			// Добавляем идентичность пользователя в контекст запроса
			ctx := context.WithValue(r.Context(), AuthUserKey, user)

			log.Printf("[AuthMiddleware] Пользователь %d (%s) успешно аутентифицирован", user.ID, user.Username)

			// Передаем управление следующему обработчику с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuthUserFromContext извлекает идентичность пользователя из контекста запроса.
// Возвращает идентичность и true, если она найдена, иначе нулевое значение и false.
func GetAuthUserFromContext(ctx context.Context) (models.AuthUser, bool) {
	if ctx == nil {
		return models.AuthUser{}, false
	}
	user, ok := ctx.Value(AuthUserKey).(models.AuthUser)
	return user, ok
}

// unauthorized отправляет 401 с JSON-телом {"error": ...}.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("[AuthMiddleware] Ошибка кодирования ответа об ошибке: %v", err)
	}
}
