package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/service"
)

// Handler holds the HTTP endpoints of the API
type Handler struct {
	auth          *service.AuthService
	company       *service.CompanyService
	dashboard     *service.DashboardService
	reports       *service.ReportsService
	payments      *service.PaymentService
	transactions  *service.TransactionService
	projects      *service.ProjectService
	clients       *service.ClientService
	notifications *service.NotificationService
	log           *logrus.Logger
}

// NewHandler initializes the handler with every service
func NewHandler(
	auth *service.AuthService,
	company *service.CompanyService,
	dashboard *service.DashboardService,
	reports *service.ReportsService,
	payments *service.PaymentService,
	transactions *service.TransactionService,
	projects *service.ProjectService,
	clients *service.ClientService,
	notifications *service.NotificationService,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		auth:          auth,
		company:       company,
		dashboard:     dashboard,
		reports:       reports,
		payments:      payments,
		transactions:  transactions,
		projects:      projects,
		clients:       clients,
		notifications: notifications,
		log:           log,
	}
}

func (h *Handler) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data}); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	if status == http.StatusInternalServerError {
		h.log.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": msg})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.badRequest(w, "invalid request body")
		return false
	}
	return true
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value("userID").(string)
	return id
}

func companyID(r *http.Request) string {
	id, _ := r.Context().Value("companyID").(string)
	return id
}

func role(r *http.Request) string {
	role, _ := r.Context().Value("role").(string)
	return role
}
