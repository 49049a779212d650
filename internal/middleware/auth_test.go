package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maynagashev/partsorganizer/internal/middleware"
	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecretKey = "test-secret-key"

func TestGetAuthUserFromContext(t *testing.T) {
	testUser := models.AuthUser{ID: 123, Username: "testuser"}

	tests := []struct {
		name         string
		ctx          context.Context
		expectedUser models.AuthUser
		expectedOK   bool
	}{
		{
			name:         "Контекст с пользователем",
			ctx:          context.WithValue(context.Background(), middleware.AuthUserKey, testUser),
			expectedUser: testUser,
			expectedOK:   true,
		},
		{
			name:       "Пустой контекст",
			ctx:        context.Background(),
			expectedOK: false,
		},
		{
			name:       "Контекст со значением неверного типа",
			ctx:        context.WithValue(context.Background(), middleware.AuthUserKey, "not-a-user"),
			expectedOK: false,
		},
		{
			name:       "Nil контекст",
			ctx:        nil,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := middleware.GetAuthUserFromContext(tt.ctx)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestAuthenticator(t *testing.T) {
	tokenService := token.NewService(jwtSecretKey, time.Hour)
	testUser := models.AuthUser{ID: 42, Username: "admin"}

	validToken, err := tokenService.Issue(testUser)
	require.NoError(t, err)

	foreignToken, err := token.NewService("another-secret", time.Hour).Issue(testUser)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "Валидный токен",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "Заголовок отсутствует",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:           "Токен без схемы Bearer",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:           "Неверная схема",
			authHeader:     "Basic " + validToken,
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:           "Токен с чужой подписью",
			authHeader:     "Bearer " + foreignToken,
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:           "Повреждённый токен",
			authHeader:     "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var userInContext models.AuthUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				userInContext, _ = middleware.GetAuthUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.Authenticator(tokenService)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNext, nextCalled)

			if tt.expectNext {
				// Идентичность из токена должна попасть в контекст
				assert.Equal(t, testUser, userInContext)
			} else {
				// Ответ об ошибке - JSON с полем error
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestAuthenticator_ExpiredToken(t *testing.T) {
	tokenService := token.NewService(jwtSecretKey, time.Hour)

	// Токен с отрицательным сроком жизни недоступен через публичный API,
	// поэтому проверяем через сервис с минимальным TTL и ожидание
	shortLived := token.NewService(jwtSecretKey, time.Millisecond)
	expiredToken, err := shortLived.Issue(models.AuthUser{ID: 1, Username: "testuser"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticator(tokenService)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+expiredToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
