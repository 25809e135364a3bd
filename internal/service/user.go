package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"TodoKeeper/internal/auth"
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/repo"
)

// схема записи: email обязателен и похож на email, имя и хеш непустые
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService — регистрация и вход. Составляет хешер паролей, выпуск
// токенов и репозиторий пользователей.
type UserService struct {
	repo       repo.UserRepository
	authSecret string
	bcryptCost int
}

func NewUserService(r repo.UserRepository, authSecret string, bcryptCost int) *UserService {
	return &UserService{repo: r, authSecret: authSecret, bcryptCost: bcryptCost}
}

// Register создаёт пользователя с пустым списком дел и возвращает токен.
// Ровно одна запись в хранилище; повтор с тем же email даёт ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, email, userName, password string) (string, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	if userName == "" || password == "" {
		return "", ErrMissingField
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		UserName:     userName,
		PasswordHash: hash,
		Items:        model.ItemList{},
	}
	if err := validateUser(user); err != nil {
		return "", err
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := auth.BuildJWTString(created.ID, s.authSecret, auth.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Login проверяет пароль и возвращает токен. Хранилище не изменяет.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := auth.BuildJWTString(user.ID, s.authSecret, auth.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// validateUser проверяет собранную запись по объявленной схеме.
func validateUser(u *model.User) error {
	if !emailRe.MatchString(u.Email) {
		return fmt.Errorf("%w: email %q is not a valid address", ErrValidationFailed, u.Email)
	}
	if u.UserName == "" {
		return fmt.Errorf("%w: userName is required", ErrValidationFailed)
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", ErrValidationFailed)
	}
	return nil
}
