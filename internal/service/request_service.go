package service

import (
	"time"

	"travelbuddy/internal/model"
)

// RequestService содержит бизнес-логику заявок на участие в поездках
// и контроля посадочных мест.
type RequestService struct {
	requestStore RequestStore
	tripStore    TripStore
	now          func() time.Time
}

// NewRequestService создает новый сервис заявок.
func NewRequestService(requestStore RequestStore, tripStore TripStore) *RequestService {
	return &RequestService{requestStore: requestStore, tripStore: tripStore, now: time.Now}
}

// SendRequest создает заявку пользователя на присоединение к поездке.
// Заявка не создается, если поездка не найдена, если у пользователя уже есть
// активная заявка на нее или если свободных мест не осталось.
func (s *RequestService) SendRequest(tripID, userID int) (*model.TripRequest, error) {
	trip, err := s.tripStore.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	active, err := s.requestStore.HasActiveRequest(tripID, userID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, model.ErrAlreadyRequested
	}
	approved, err := s.requestStore.CountByTripIDAndStatus(tripID, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	if approved >= trip.MaxSeats {
		return nil, model.ErrTripFull
	}
	req := &model.TripRequest{
		TripID:      tripID,
		UserID:      userID,
		Status:      model.StatusPending,
		RequestedAt: s.now(),
	}
	id, err := s.requestStore.Create(req)
	if err != nil {
		return nil, err
	}
	req.ID = id
	return req, nil
}

// ApproveRequest одобряет заявку от имени создателя поездки. Вместимость
// поездки пересчитывается хранилищем атомарно с переводом статуса, поэтому
// число одобренных заявок не может превысить max_seats даже при
// конкурирующих одобрениях.
func (s *RequestService) ApproveRequest(requestID, callerID int) (*model.TripRequest, error) {
	if err := s.checkOwner(requestID, callerID); err != nil {
		return nil, err
	}
	return s.requestStore.Approve(requestID)
}

// RejectRequest отклоняет заявку от имени создателя поездки.
func (s *RequestService) RejectRequest(requestID, callerID int) (*model.TripRequest, error) {
	if err := s.checkOwner(requestID, callerID); err != nil {
		return nil, err
	}
	return s.requestStore.Reject(requestID)
}

// checkOwner убеждается, что действие выполняет создатель поездки,
// к которой относится заявка.
func (s *RequestService) checkOwner(requestID, callerID int) error {
	req, err := s.requestStore.GetByID(requestID)
	if err != nil {
		return err
	}
	trip, err := s.tripStore.GetByID(req.TripID)
	if err != nil {
		return err
	}
	if trip.RiderID != callerID {
		return model.ErrNotTripOwner
	}
	return nil
}

// GetRequestsForTrip возвращает все заявки на поездку независимо от статуса.
func (s *RequestService) GetRequestsForTrip(tripID int) ([]model.TripRequest, error) {
	return s.requestStore.GetByTripID(tripID)
}

// GetApprovedTripsForUser возвращает одобренные заявки пользователя —
// поездки, к которым он присоединился.
func (s *RequestService) GetApprovedTripsForUser(userID int) ([]model.TripRequest, error) {
	return s.requestStore.GetByUserIDAndStatus(userID, model.StatusApproved)
}
