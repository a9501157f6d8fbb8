package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/flukechat/fluke-backend/internal/user/domain"
	"github.com/flukechat/fluke-backend/internal/user/usecase/command"
	"github.com/flukechat/fluke-backend/internal/user/usecase/query"
	"github.com/flukechat/fluke-backend/kafka"
	"github.com/flukechat/fluke-backend/pkg/logger"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to user service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	registeredUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_service_registered_users",
			Help: "Number of registered users in the system",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCounter, requestLatency, registeredUsers)
}

// UserHandler handles HTTP requests for users
type UserHandler struct {
	// Command handlers
	signupHandler *command.SignupUserHandler
	deleteHandler *command.DeleteUserHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	// Optional event publisher; nil disables publishing.
	kafkaPublisher *kafka.Publisher
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository, publisher *kafka.Publisher) *UserHandler {
	return &UserHandler{
		signupHandler:  command.NewSignupUserHandler(repo),
		deleteHandler:  command.NewDeleteUserHandler(repo),
		getUserHandler: query.NewGetUserHandler(repo),
		listHandler:    query.NewListUsersHandler(repo),
		kafkaPublisher: publisher,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// SignupUser handles POST /signup
func (h *UserHandler) SignupUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.SignupUserCommand{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	result, err := h.signupHandler.Handle(r.Context(), cmd)
	if err != nil {
		// Classified storage failures carry their own status and a fixed
		// plain-text message; the raw driver error never leaves the logs.
		var signupErr *domain.SignupError
		if errors.As(err, &signupErr) {
			http.Error(w, signupErr.Error(), signupErr.HTTPStatus())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	registeredUsers.Inc()
	h.publishUserRegistered(r.Context(), result.User)

	w.Header().Set("Location", result.Location)
	h.respondJSON(w, http.StatusCreated, result.User)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	// The full listing is the authoritative count; signup and delete only
	// nudge the gauge between listings.
	registeredUsers.Set(float64(len(users)))

	h.respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	if user == nil {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	removed, err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: id})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if !removed {
		h.respondError(w, http.StatusNotFound, "User not found")
		return
	}

	registeredUsers.Dec()
	h.publishUserDeleted(r.Context(), id)

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// publishUserRegistered emits the lifecycle event; a broker failure is an
// operational concern and never changes the response.
func (h *UserHandler) publishUserRegistered(ctx context.Context, user *domain.User) {
	if h.kafkaPublisher == nil {
		return
	}

	event := kafka.UserRegisteredEvent{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if err := h.kafkaPublisher.PublishUserRegistered(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Int64("user_id", user.ID).Msg("Failed to publish user registered event")
	}
}

func (h *UserHandler) publishUserDeleted(ctx context.Context, id int64) {
	if h.kafkaPublisher == nil {
		return
	}

	event := kafka.UserDeletedEvent{UserID: id}
	if err := h.kafkaPublisher.PublishUserDeleted(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Int64("user_id", id).Msg("Failed to publish user deleted event")
	}
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/signup", h.metricsMiddleware("/signup", h.SignupUser)).Methods("POST")
	router.HandleFunc("/users", h.metricsMiddleware("/users", h.ListUsers)).Methods("GET")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.GetUser)).Methods("GET")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.DeleteUser)).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
