package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"travelbuddy/internal/model"

	"github.com/jmoiron/sqlx"
)

// TripRepository обеспечивает доступ к данным поездок в базе данных.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create сохраняет новую поездку и возвращает присвоенный идентификатор.
func (r *TripRepository) Create(trip *model.Trip) (int, error) {
	query := `INSERT INTO trips (departure_place, arrival_place, departure_date, rider_id, max_seats)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(query, trip.DeparturePlace, trip.ArrivalPlace, trip.DepartureDate, trip.RiderID, trip.MaxSeats).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать поездку: %w", err)
	}
	return id, nil
}

// GetByID возвращает поездку по идентификатору.
func (r *TripRepository) GetByID(id int) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrTripNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поездки: %w", err)
	}
	return &trip, nil
}

// SearchByRoute возвращает поездки по маршруту (без учета регистра),
// дата которых попадает в закрытый интервал [fromDate, toDate].
func (r *TripRepository) SearchByRoute(departure, arrival, fromDate, toDate string) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips,
		`SELECT * FROM trips
		 WHERE LOWER(departure_place) = LOWER($1)
		   AND LOWER(arrival_place) = LOWER($2)
		   AND departure_date BETWEEN $3 AND $4`,
		departure, arrival, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске поездок: %w", err)
	}
	return trips, nil
}

// GetByRiderID возвращает поездки, созданные указанным пользователем.
func (r *TripRepository) GetByRiderID(riderID int) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips, "SELECT * FROM trips WHERE rider_id=$1", riderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении поездок пользователя: %w", err)
	}
	return trips, nil
}
