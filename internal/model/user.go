package model

// User представляет зарегистрированного пользователя (байкера).
// Пароль хранится в виде bcrypt-хэша и никогда не сериализуется в ответы API.
type User struct {
	ID               int    `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	Email            string `db:"email" json:"email"`
	Password         string `db:"password" json:"-"`
	Phone            string `db:"phone" json:"phone"`
	RidingExperience string `db:"riding_experience" json:"ridingExperience"`
	BikeType         string `db:"bike_type" json:"bikeType"`
}
