package model

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("trip not found")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("trip request not found")

	// ErrTripFull возвращается, когда в поездке не осталось свободных мест
	ErrTripFull = errors.New("trip is full")

	// ErrAlreadyRequested возвращается при повторной заявке на ту же поездку
	ErrAlreadyRequested = errors.New("request already exists for this trip")

	// ErrRequestClosed возвращается при попытке изменить уже рассмотренную заявку
	ErrRequestClosed = errors.New("request already resolved")

	// ErrNotTripOwner возвращается, когда действие доступно только создателю поездки
	ErrNotTripOwner = errors.New("caller is not the trip owner")

	// ErrEmptyRoute возвращается, когда не указано место отправления или прибытия
	ErrEmptyRoute = errors.New("departure and arrival places are required")

	// ErrBadDate возвращается при дате, не соответствующей формату DateLayout
	ErrBadDate = errors.New("departure date must be formatted as YYYY-MM-DD")

	// ErrInvalidSeats возвращается при создании поездки без посадочных мест
	ErrInvalidSeats = errors.New("trip capacity must be at least one seat")

	// ErrInvalidUser возвращается при регистрации с незаполненными полями
	ErrInvalidUser = errors.New("name, email and password are required")

	// ErrEmailTaken возвращается при регистрации с уже занятым email
	ErrEmailTaken = errors.New("email already registered")
)
