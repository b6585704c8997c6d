package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/genbahq/cashsignal/internal/service"
)

// CreatePaymentRequest files a new payment request
func (h *Handler) CreatePaymentRequest(w http.ResponseWriter, r *http.Request) {
	var in service.CreatePaymentRequestInput
	if !h.decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		h.badRequest(w, "amount must be positive")
		return
	}

	request, err := h.payments.Create(r.Context(), userID(r), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, request)
}

// ListPaymentRequests returns the company's payment requests.
// With status=PENDING only the open ones are returned.
func (h *Handler) ListPaymentRequests(w http.ResponseWriter, r *http.Request) {
	var projectID *string
	if v := r.URL.Query().Get("projectId"); v != "" {
		projectID = &v
	}

	if r.URL.Query().Get("status") == "PENDING" {
		requests, err := h.payments.FindPending(r.Context(), companyID(r))
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		h.respond(w, http.StatusOK, requests)
		return
	}

	requests, err := h.payments.FindAll(r.Context(), companyID(r), projectID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, requests)
}

// ApprovePaymentRequest approves a pending request
func (h *Handler) ApprovePaymentRequest(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]
	request, err := h.payments.Approve(r.Context(), requestID, userID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, request)
}

// RejectPaymentRequest rejects a pending request with an optional comment
func (h *Handler) RejectPaymentRequest(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	var in struct {
		Comment string `json:"comment"`
	}
	if !h.decode(w, r, &in) {
		return
	}

	request, err := h.payments.Reject(r.Context(), requestID, userID(r), in.Comment)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, request)
}

// GetPaymentImpact previews balances and signals as if the request were paid
func (h *Handler) GetPaymentImpact(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]
	impact, err := h.payments.Impact(r.Context(), requestID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, impact)
}
