package repository

import (
	"fmt"

	"travelbuddy/internal/model"

	"github.com/jmoiron/sqlx"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя в базу. Возвращает ID созданного пользователя.
func (r *UserRepository) Create(user *model.User) (int, error) {
	query := `INSERT INTO users (name, email, password, phone, riding_experience, bike_type)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(query, user.Name, user.Email, user.Password, user.Phone, user.RidingExperience, user.BikeType).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}

// EmailExists сообщает, зарегистрирован ли уже пользователь с таким email.
func (r *UserRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.Get(&exists, "SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))", email)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке email: %w", err)
	}
	return exists, nil
}
