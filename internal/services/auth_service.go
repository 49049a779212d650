package services

import (
	"context"
	"errors"
	"log"

	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/repository"
	"github.com/maynagashev/partsorganizer/internal/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthService определяет интерфейс для сервиса аутентификации.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo repository.UserRepository // Зависимость от репозитория пользователей
	tokens   *token.Service            // Сервис выпуска токенов
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Register регистрирует нового пользователя.
// В финальной итерации HTTP-маршрута регистрации нет:
// метод используется для создания служебных аккаунтов при старте.
func (s *authService) Register(ctx context.Context, username, password string) error {
	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", username, err)
		return errors.New("внутренняя ошибка сервера при хешировании пароля")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	// Создаем пользователя через репозиторий
	_, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			log.Printf("[AuthService] Попытка регистрации с занятым именем: %s", username)
			return ErrUsernameTaken // Возвращаем ошибку слоя сервиса
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", username, err)
		return errors.New("внутренняя ошибка сервера при создании пользователя")
	}

	log.Printf("[AuthService] Пользователь '%s' успешно зарегистрирован", username)
	return nil
}

// Login аутентифицирует пользователя и возвращает токен вместе с его записью.
// На несуществующего пользователя и на неверный пароль возвращается одна
// и та же ErrInvalidCredentials, чтобы не раскрывать, какие имена заняты.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	// Получаем пользователя по имени пользователя
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Попытка входа несуществующего пользователя: %s", username)
			return "", nil, ErrInvalidCredentials
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", username, err)
		return "", nil, errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	// Сравниваем предоставленный пароль с хешем из базы данных
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		// Ошибка сравнения означает неверный пароль (или другую проблему bcrypt)
		log.Printf("[AuthService] Неверный пароль для пользователя: %s", username)
		return "", nil, ErrInvalidCredentials
	}

	// Выпускаем токен
	signedToken, err := s.tokens.Issue(models.AuthUser{ID: user.ID, Username: user.Username})
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации токена для '%s': %v", username, err)
		return "", nil, errors.New("внутренняя ошибка сервера при генерации токена")
	}

	log.Printf("[AuthService] Пользователь '%s' успешно аутентифицирован", username)
	return signedToken, user, nil
}

// Кастомные ошибки сервиса.
var (
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrUsernameTaken      = errors.New("имя пользователя уже занято")
)
