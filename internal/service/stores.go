package service

import "travelbuddy/internal/model"

// TripStore описывает хранилище поездок, необходимое сервисам.
// Его реализуют repository.TripRepository (Postgres) и inmem.TripStore.
type TripStore interface {
	Create(trip *model.Trip) (int, error)
	GetByID(id int) (*model.Trip, error)
	SearchByRoute(departure, arrival, fromDate, toDate string) ([]model.Trip, error)
	GetByRiderID(riderID int) ([]model.Trip, error)
}

// RequestStore описывает хранилище заявок на участие в поездках.
// Approve и Reject переводят заявку из PENDING в конечный статус атомарно;
// Approve дополнительно сверяет количество одобренных заявок с вместимостью
// поездки в рамках того же перехода.
type RequestStore interface {
	Create(req *model.TripRequest) (int, error)
	GetByID(id int) (*model.TripRequest, error)
	GetByTripID(tripID int) ([]model.TripRequest, error)
	GetByUserIDAndStatus(userID int, status string) ([]model.TripRequest, error)
	CountByTripIDAndStatus(tripID int, status string) (int, error)
	HasActiveRequest(tripID, userID int) (bool, error)
	Approve(requestID int) (*model.TripRequest, error)
	Reject(requestID int) (*model.TripRequest, error)
}

// UserStore описывает хранилище пользователей.
type UserStore interface {
	Create(user *model.User) (int, error)
	EmailExists(email string) (bool, error)
}
