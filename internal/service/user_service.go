package service

import (
	"fmt"
	"strings"

	"travelbuddy/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// UserService содержит бизнес-логику, связанную с пользователями.
type UserService struct {
	userStore UserStore
}

// NewUserService создает новый сервис пользователей.
func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

// RegisterUser регистрирует нового пользователя. Пароль сохраняется
// в виде bcrypt-хэша. Возвращает пользователя с присвоенным идентификатором.
func (s *UserService) RegisterUser(user *model.User) (*model.User, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || user.Password == "" {
		return nil, model.ErrInvalidUser
	}
	taken, err := s.userStore.EmailExists(user.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("не удалось захэшировать пароль: %w", err)
	}
	user.Password = string(hash)
	id, err := s.userStore.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}
