// Package token реализует сервис выпуска и проверки JWT-токенов.
// Токены stateless: на сервере ничего не хранится, валидность полностью
// определяется подписью и сроком действия в момент проверки.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/maynagashev/partsorganizer/internal/models"
)

// DefaultTTL - время жизни токена по умолчанию (12 часов).
const DefaultTTL = 12 * time.Hour

const tokenIssuer = "parts-organizer-server"

// ErrInvalidToken возвращается при любой ошибке проверки токена:
// неверная подпись, повреждённая строка, истёкший срок действия.
// Единая ошибка - клиенту не сообщаем, что именно не так с токеном.
var ErrInvalidToken = errors.New("невалидный токен")

// Claims - полезная нагрузка токена: идентичность пользователя
// плюс стандартные регистрируемые поля.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service выпускает и проверяет подписанные токены.
// Секрет задаётся один раз при создании и используется обеими операциями,
// чтобы он не дублировался между сервисом аутентификации и middleware.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService создает новый сервис токенов с указанным секретом и временем жизни.
// Если ttl <= 0, используется DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue создает и подписывает JWT-токен для пользователя.
func (s *Service) Issue(user models.AuthUser) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи JWT: %w", err)
	}

	return signedToken, nil
}

// Verify проверяет подпись и срок действия токена.
// На успех возвращает идентичность пользователя из токена,
// на любую ошибку - ErrInvalidToken.
func (s *Service) Verify(tokenString string) (models.AuthUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи - HMAC (HS256)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.AuthUser{}, ErrInvalidToken
	}

	return models.AuthUser{ID: claims.UserID, Username: claims.Username}, nil
}

// ExtractFromHeader извлекает токен из заголовка Authorization
// в формате "Bearer <token>". Возвращает токен и true, если заголовок
// корректен, иначе пустую строку и false (без ошибки).
func ExtractFromHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
		return "", false
	}

	return headerParts[1], true
}
