package model

import "time"

// Статусы заявки на участие в поездке. Новая заявка создается в статусе
// PENDING; допустимые переходы — только PENDING -> APPROVED и PENDING -> REJECTED.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// TripRequest представляет заявку пользователя на присоединение к поездке.
type TripRequest struct {
	ID          int       `db:"id" json:"id"`
	TripID      int       `db:"trip_id" json:"tripId"`
	UserID      int       `db:"user_id" json:"userId"` // пользователь, подавший заявку
	Status      string    `db:"status" json:"status"`
	RequestedAt time.Time `db:"requested_at" json:"requestedAt"`
}
