package service

import (
	"strings"
	"time"

	"travelbuddy/internal/model"
)

// searchWindowDays — фиксированный допуск поиска по дате: попутчики редко
// едут день в день, поэтому поиск захватывает ±2 дня от указанной даты.
const searchWindowDays = 2

// TripService содержит бизнес-логику каталога поездок.
type TripService struct {
	tripStore TripStore
}

// NewTripService создает новый сервис поездок.
func NewTripService(tripStore TripStore) *TripService {
	return &TripService{tripStore: tripStore}
}

// CreateTrip проверяет и сохраняет новую поездку. Возвращает поездку
// с присвоенным идентификатором.
func (s *TripService) CreateTrip(trip *model.Trip) (*model.Trip, error) {
	if strings.TrimSpace(trip.DeparturePlace) == "" || strings.TrimSpace(trip.ArrivalPlace) == "" {
		return nil, model.ErrEmptyRoute
	}
	if _, err := time.Parse(model.DateLayout, trip.DepartureDate); err != nil {
		return nil, model.ErrBadDate
	}
	if trip.MaxSeats < 1 {
		return nil, model.ErrInvalidSeats
	}
	id, err := s.tripStore.Create(trip)
	if err != nil {
		return nil, err
	}
	trip.ID = id
	return trip, nil
}

// SearchTrips возвращает поездки по маршруту, дата которых попадает в окно
// [date-2, date+2] включительно. Совпадение мест — без учета регистра.
func (s *TripService) SearchTrips(departure, arrival, date string) ([]model.Trip, error) {
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return nil, model.ErrBadDate
	}
	from := day.AddDate(0, 0, -searchWindowDays).Format(model.DateLayout)
	to := day.AddDate(0, 0, searchWindowDays).Format(model.DateLayout)
	return s.tripStore.SearchByRoute(departure, arrival, from, to)
}

// GetTrip возвращает поездку по идентификатору.
func (s *TripService) GetTrip(tripID int) (*model.Trip, error) {
	return s.tripStore.GetByID(tripID)
}

// GetTripsByRider возвращает поездки, созданные указанным пользователем.
func (s *TripService) GetTripsByRider(riderID int) ([]model.Trip, error) {
	return s.tripStore.GetByRiderID(riderID)
}
