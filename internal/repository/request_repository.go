package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"travelbuddy/internal/model"

	"github.com/jmoiron/sqlx"
)

// RequestRepository обеспечивает доступ к данным заявок на участие в поездках.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository создает новый репозиторий заявок.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create сохраняет новую заявку и возвращает присвоенный идентификатор.
func (r *RequestRepository) Create(req *model.TripRequest) (int, error) {
	query := `INSERT INTO trip_requests (trip_id, user_id, status, requested_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := r.db.QueryRow(query, req.TripID, req.UserID, req.Status, req.RequestedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать заявку: %w", err)
	}
	return id, nil
}

// GetByID возвращает заявку по идентификатору.
func (r *RequestRepository) GetByID(id int) (*model.TripRequest, error) {
	var req model.TripRequest
	err := r.db.Get(&req, "SELECT * FROM trip_requests WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrRequestNotFound
		}
		return nil, fmt.Errorf("ошибка при получении заявки: %w", err)
	}
	return &req, nil
}

// GetByTripID возвращает все заявки на поездку независимо от статуса.
func (r *RequestRepository) GetByTripID(tripID int) ([]model.TripRequest, error) {
	requests := []model.TripRequest{}
	err := r.db.Select(&requests, "SELECT * FROM trip_requests WHERE trip_id=$1", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заявок поездки: %w", err)
	}
	return requests, nil
}

// GetByUserIDAndStatus возвращает заявки пользователя с указанным статусом.
func (r *RequestRepository) GetByUserIDAndStatus(userID int, status string) ([]model.TripRequest, error) {
	requests := []model.TripRequest{}
	err := r.db.Select(&requests, "SELECT * FROM trip_requests WHERE user_id=$1 AND status=$2", userID, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заявок пользователя: %w", err)
	}
	return requests, nil
}

// CountByTripIDAndStatus возвращает количество заявок поездки с указанным статусом.
func (r *RequestRepository) CountByTripIDAndStatus(tripID int, status string) (int, error) {
	var count int
	err := r.db.Get(&count, "SELECT COUNT(*) FROM trip_requests WHERE trip_id=$1 AND status=$2", tripID, status)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете заявок: %w", err)
	}
	return count, nil
}

// HasActiveRequest сообщает, есть ли у пользователя нерассмотренная или
// одобренная заявка на указанную поездку. Отклоненная заявка не мешает
// подать новую.
func (r *RequestRepository) HasActiveRequest(tripID, userID int) (bool, error) {
	var exists bool
	err := r.db.Get(&exists,
		`SELECT EXISTS (SELECT 1 FROM trip_requests
		 WHERE trip_id=$1 AND user_id=$2 AND status <> $3)`,
		tripID, userID, model.StatusRejected)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке заявки: %w", err)
	}
	return exists, nil
}

// Approve переводит заявку из PENDING в APPROVED. Количество уже одобренных
// заявок сверяется с вместимостью поездки в том же условном UPDATE, а строка
// поездки блокируется на время транзакции, поэтому конкурирующие одобрения
// не могут превысить max_seats.
func (r *RequestRepository) Approve(requestID int) (*model.TripRequest, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	// Фиктивное обновление берет блокировку строки поездки: одобрения одной
	// поездки выполняются строго по очереди, и пересчет мест не устаревает.
	_, err = tx.Exec(`UPDATE trips SET max_seats = max_seats
	                  WHERE id = (SELECT trip_id FROM trip_requests WHERE id=$1)`, requestID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("не удалось заблокировать поездку: %w", err)
	}

	res, err := tx.Exec(`UPDATE trip_requests SET status=$1
		WHERE id=$2 AND status=$3
		  AND (SELECT COUNT(*) FROM trip_requests a
		       WHERE a.trip_id = trip_requests.trip_id AND a.status = $1)
		      < (SELECT t.max_seats FROM trips t WHERE t.id = trip_requests.trip_id)`,
		model.StatusApproved, requestID, model.StatusPending)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("не удалось одобрить заявку: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("не удалось одобрить заявку: %w", err)
	}
	if affected == 0 {
		err := transitionFailure(tx, requestID)
		tx.Rollback()
		return nil, err
	}

	var req model.TripRequest
	if err := tx.Get(&req, "SELECT * FROM trip_requests WHERE id=$1", requestID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("ошибка при получении заявки: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("не удалось зафиксировать одобрение: %w", err)
	}
	return &req, nil
}

// Reject переводит заявку из PENDING в REJECTED.
func (r *RequestRepository) Reject(requestID int) (*model.TripRequest, error) {
	res, err := r.db.Exec("UPDATE trip_requests SET status=$1 WHERE id=$2 AND status=$3",
		model.StatusRejected, requestID, model.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("не удалось отклонить заявку: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("не удалось отклонить заявку: %w", err)
	}
	if affected == 0 {
		req, err := r.GetByID(requestID)
		if err != nil {
			return nil, err
		}
		if req.Status != model.StatusPending {
			return nil, model.ErrRequestClosed
		}
		return nil, fmt.Errorf("не удалось отклонить заявку %d", requestID)
	}
	return r.GetByID(requestID)
}

// transitionFailure выясняет, почему условное обновление не затронуло строку:
// заявки нет, заявка уже рассмотрена или поездка заполнена.
func transitionFailure(tx *sqlx.Tx, requestID int) error {
	var req model.TripRequest
	if err := tx.Get(&req, "SELECT * FROM trip_requests WHERE id=$1", requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrRequestNotFound
		}
		return fmt.Errorf("ошибка при получении заявки: %w", err)
	}
	if req.Status != model.StatusPending {
		return model.ErrRequestClosed
	}
	return model.ErrTripFull
}
