package model

// DateLayout — формат календарной даты поездки (без компонента времени).
const DateLayout = "2006-01-02"

// Trip представляет предложение поездки: маршрут, дата и количество мест.
// После создания поездка неизменяема.
type Trip struct {
	ID             int    `db:"id" json:"id"`
	DeparturePlace string `db:"departure_place" json:"departurePlace"`
	ArrivalPlace   string `db:"arrival_place" json:"arrivalPlace"`
	DepartureDate  string `db:"departure_date" json:"departureDate"` // в формате DateLayout
	RiderID        int    `db:"rider_id" json:"riderId"`             // пользователь, создавший поездку
	MaxSeats       int    `db:"max_seats" json:"maxSeats"`
}
