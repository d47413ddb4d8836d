// Package inmem содержит хранилища в памяти, взаимозаменяемые с
// Postgres-репозиториями. Применяются в тестах и при локальной разработке
// без базы данных.
package inmem

import (
	"sort"
	"strings"
	"sync"

	"travelbuddy/internal/model"
)

// TripStore хранит поездки в памяти.
type TripStore struct {
	mu     sync.Mutex
	nextID int
	trips  map[int]model.Trip
}

// NewTripStore создает пустое хранилище поездок.
func NewTripStore() *TripStore {
	return &TripStore{trips: make(map[int]model.Trip)}
}

// Create сохраняет новую поездку и возвращает присвоенный идентификатор.
func (s *TripStore) Create(trip *model.Trip) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := *trip
	t.ID = s.nextID
	s.trips[t.ID] = t
	return t.ID, nil
}

// GetByID возвращает поездку по идентификатору.
func (s *TripStore) GetByID(id int) (*model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return nil, model.ErrTripNotFound
	}
	return &t, nil
}

// SearchByRoute возвращает поездки по маршруту (без учета регистра) с датой
// в закрытом интервале [fromDate, toDate]. Даты в формате model.DateLayout
// сравниваются лексикографически.
func (s *TripStore) SearchByRoute(departure, arrival, fromDate, toDate string) ([]model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.Trip{}
	for _, t := range s.trips {
		if strings.EqualFold(t.DeparturePlace, departure) &&
			strings.EqualFold(t.ArrivalPlace, arrival) &&
			t.DepartureDate >= fromDate && t.DepartureDate <= toDate {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// GetByRiderID возвращает поездки, созданные указанным пользователем.
func (s *TripStore) GetByRiderID(riderID int) ([]model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.Trip{}
	for _, t := range s.trips {
		if t.RiderID == riderID {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// RequestStore хранит заявки на участие в памяти. Для контроля вместимости
// при одобрении ему нужен доступ к хранилищу поездок.
type RequestStore struct {
	mu       sync.Mutex
	nextID   int
	requests map[int]model.TripRequest
	trips    *TripStore
}

// NewRequestStore создает пустое хранилище заявок поверх хранилища поездок.
func NewRequestStore(trips *TripStore) *RequestStore {
	return &RequestStore{requests: make(map[int]model.TripRequest), trips: trips}
}

// Create сохраняет новую заявку и возвращает присвоенный идентификатор.
func (s *RequestStore) Create(req *model.TripRequest) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	r := *req
	r.ID = s.nextID
	s.requests[r.ID] = r
	return r.ID, nil
}

// GetByID возвращает заявку по идентификатору.
func (s *RequestStore) GetByID(id int) (*model.TripRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, model.ErrRequestNotFound
	}
	return &r, nil
}

// GetByTripID возвращает все заявки на поездку независимо от статуса.
func (s *RequestStore) GetByTripID(tripID int) ([]model.TripRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.TripRequest{}
	for _, r := range s.requests {
		if r.TripID == tripID {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// GetByUserIDAndStatus возвращает заявки пользователя с указанным статусом.
func (s *RequestStore) GetByUserIDAndStatus(userID int, status string) ([]model.TripRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.TripRequest{}
	for _, r := range s.requests {
		if r.UserID == userID && r.Status == status {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// CountByTripIDAndStatus возвращает количество заявок поездки с указанным статусом.
func (s *RequestStore) CountByTripIDAndStatus(tripID int, status string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(tripID, status), nil
}

// HasActiveRequest сообщает, есть ли у пользователя нерассмотренная или
// одобренная заявка на указанную поездку.
func (s *RequestStore) HasActiveRequest(tripID, userID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.TripID == tripID && r.UserID == userID && r.Status != model.StatusRejected {
			return true, nil
		}
	}
	return false, nil
}

// Approve переводит заявку из PENDING в APPROVED, пересчитывая количество
// одобренных заявок под общей блокировкой, так что вместимость поездки
// не может быть превышена.
func (s *RequestStore) Approve(requestID int) (*model.TripRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, model.ErrRequestNotFound
	}
	if r.Status != model.StatusPending {
		return nil, model.ErrRequestClosed
	}
	trip, err := s.trips.GetByID(r.TripID)
	if err != nil {
		return nil, err
	}
	if s.countLocked(r.TripID, model.StatusApproved) >= trip.MaxSeats {
		return nil, model.ErrTripFull
	}
	r.Status = model.StatusApproved
	s.requests[requestID] = r
	return &r, nil
}

// Reject переводит заявку из PENDING в REJECTED.
func (s *RequestStore) Reject(requestID int) (*model.TripRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, model.ErrRequestNotFound
	}
	if r.Status != model.StatusPending {
		return nil, model.ErrRequestClosed
	}
	r.Status = model.StatusRejected
	s.requests[requestID] = r
	return &r, nil
}

func (s *RequestStore) countLocked(tripID int, status string) int {
	count := 0
	for _, r := range s.requests {
		if r.TripID == tripID && r.Status == status {
			count++
		}
	}
	return count
}

// UserStore хранит пользователей в памяти.
type UserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]model.User
}

// NewUserStore создает пустое хранилище пользователей.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int]model.User)}
}

// Create добавляет нового пользователя и возвращает присвоенный идентификатор.
func (s *UserStore) Create(user *model.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u := *user
	u.ID = s.nextID
	s.users[u.ID] = u
	return u.ID, nil
}

// EmailExists сообщает, зарегистрирован ли уже пользователь с таким email.
func (s *UserStore) EmailExists(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
