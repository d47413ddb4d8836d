package handler

import (
	"errors"
	"net/http"
	"strconv"

	"travelbuddy/internal/model"
	"travelbuddy/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	UserService    *service.UserService
	TripService    *service.TripService
	RequestService *service.RequestService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(us *service.UserService, ts *service.TripService, rs *service.RequestService) *Handler {
	return &Handler{
		UserService:    us,
		TripService:    ts,
		RequestService: rs,
	}
}

// RegisterRoutes регистрирует маршруты API на переданном роутере.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/users/register", h.RegisterUser)
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips/search", h.SearchTrips)
		api.GET("/trips/rider/:riderId", h.GetTripsByRider)
		api.GET("/trips/:tripId", h.GetTrip)
		api.POST("/trips/:tripId/join", h.JoinTrip)
		api.GET("/trips/:tripId/requests", h.GetTripRequests)
		api.POST("/requests/:requestId/approve", h.ApproveRequest)
		api.POST("/requests/:requestId/reject", h.RejectRequest)
		api.GET("/requests/joined/:userId", h.GetJoinedTrips)
	}
	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

type registerUserRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Phone            string `json:"phone"`
	RidingExperience string `json:"ridingExperience"`
	BikeType         string `json:"bikeType"`
}

// RegisterUser обработчик для POST /api/users/register.
func (h *Handler) RegisterUser(c *gin.Context) {
	var in registerUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	user, err := h.UserService.RegisterUser(&model.User{
		Name:             in.Name,
		Email:            in.Email,
		Password:         in.Password,
		Phone:            in.Phone,
		RidingExperience: in.RidingExperience,
		BikeType:         in.BikeType,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type createTripRequest struct {
	DeparturePlace string `json:"departurePlace"`
	ArrivalPlace   string `json:"arrivalPlace"`
	DepartureDate  string `json:"departureDate"`
	RiderID        int    `json:"riderId"`
	MaxSeats       int    `json:"maxSeats"`
}

// CreateTrip обработчик для POST /api/trips.
func (h *Handler) CreateTrip(c *gin.Context) {
	var in createTripRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	trip, err := h.TripService.CreateTrip(&model.Trip{
		DeparturePlace: in.DeparturePlace,
		ArrivalPlace:   in.ArrivalPlace,
		DepartureDate:  in.DepartureDate,
		RiderID:        in.RiderID,
		MaxSeats:       in.MaxSeats,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// SearchTrips обработчик для GET /api/trips/search?departure=&arrival=&date=.
func (h *Handler) SearchTrips(c *gin.Context) {
	departure := c.Query("departure")
	arrival := c.Query("arrival")
	date := c.Query("date")
	if departure == "" || arrival == "" {
		writeError(c, model.ErrEmptyRoute)
		return
	}
	trips, err := h.TripService.SearchTrips(departure, arrival, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetTrip обработчик для GET /api/trips/:tripId — карточка поездки.
func (h *Handler) GetTrip(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	trip, err := h.TripService.GetTrip(tripID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GetTripsByRider обработчик для GET /api/trips/rider/:riderId.
func (h *Handler) GetTripsByRider(c *gin.Context) {
	riderID, ok := pathID(c, "riderId")
	if !ok {
		return
	}
	trips, err := h.TripService.GetTripsByRider(riderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// JoinTrip обработчик для POST /api/trips/:tripId/join?userId= —
// подача заявки на присоединение к поездке.
func (h *Handler) JoinTrip(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	req, err := h.RequestService.SendRequest(tripID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetTripRequests обработчик для GET /api/trips/:tripId/requests —
// все заявки на поездку для панели ее создателя.
func (h *Handler) GetTripRequests(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	requests, err := h.RequestService.GetRequestsForTrip(tripID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ApproveRequest обработчик для POST /api/requests/:requestId/approve?userId=.
// userId — идентификатор вызывающего; одобрить заявку может только создатель поездки.
func (h *Handler) ApproveRequest(c *gin.Context) {
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	callerID, ok := queryUserID(c)
	if !ok {
		return
	}
	req, err := h.RequestService.ApproveRequest(requestID, callerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// RejectRequest обработчик для POST /api/requests/:requestId/reject?userId=.
func (h *Handler) RejectRequest(c *gin.Context) {
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	callerID, ok := queryUserID(c)
	if !ok {
		return
	}
	req, err := h.RequestService.RejectRequest(requestID, callerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetJoinedTrips обработчик для GET /api/requests/joined/:userId —
// одобренные заявки пользователя ("поездки, к которым я присоединился").
func (h *Handler) GetJoinedTrips(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	requests, err := h.RequestService.GetApprovedTripsForUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// pathID извлекает числовой идентификатор из параметра пути.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор " + name})
		return 0, false
	}
	return id, true
}

// queryUserID извлекает идентификатор пользователя из query-параметра userId.
func queryUserID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Query("userId"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный параметр userId"})
		return 0, false
	}
	return id, true
}

// writeError преобразует доменные ошибки в HTTP-статусы.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrTripNotFound), errors.Is(err, model.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrTripFull), errors.Is(err, model.ErrAlreadyRequested),
		errors.Is(err, model.ErrRequestClosed), errors.Is(err, model.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrNotTripOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrEmptyRoute), errors.Is(err, model.ErrBadDate),
		errors.Is(err, model.ErrInvalidSeats), errors.Is(err, model.ErrInvalidUser):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка сервера"})
	}
}
