package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/genbahq/cashsignal/internal/service"
)

const maxStatementSize = 1 << 20

// RegisterIncome records a realized income transaction
func (h *Handler) RegisterIncome(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterTransactionInput
	if !h.decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		h.badRequest(w, "amount must be positive")
		return
	}

	tx, err := h.transactions.RegisterIncome(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, tx)
}

// RegisterExpense records a realized expense transaction
func (h *Handler) RegisterExpense(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterTransactionInput
	if !h.decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		h.badRequest(w, "amount must be positive")
		return
	}

	tx, err := h.transactions.RegisterExpense(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, tx)
}

// ListTransactions returns the company's transactions with optional
// projectId, from and to filters.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var projectID *string
	if v := r.URL.Query().Get("projectId"); v != "" {
		projectID = &v
	}
	start, ok := h.parseDateParam(w, r, "from")
	if !ok {
		return
	}
	end, ok := h.parseDateParam(w, r, "to")
	if !ok {
		return
	}

	transactions, err := h.transactions.List(r.Context(), companyID(r), projectID, start, end)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, transactions)
}

// ImportStatement parses an uploaded bank statement XML and records its entries
func (h *Handler) ImportStatement(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		h.badRequest(w, "projectId is required")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxStatementSize))
	if err != nil {
		h.badRequest(w, "failed to read statement body")
		return
	}

	transactions, err := h.transactions.ImportStatement(r.Context(), projectID, data)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, transactions)
}

// CreateIncomeSchedule registers expected future income
func (h *Handler) CreateIncomeSchedule(w http.ResponseWriter, r *http.Request) {
	var in service.CreateIncomeScheduleInput
	if !h.decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		h.badRequest(w, "amount must be positive")
		return
	}

	schedule, err := h.transactions.CreateIncomeSchedule(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, schedule)
}

// ListIncomeSchedules returns the company's income schedules
func (h *Handler) ListIncomeSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.transactions.ListIncomeSchedules(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, schedules)
}

func (h *Handler) parseDateParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, true
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		h.badRequest(w, name+" must be a YYYY-MM-DD date")
		return nil, false
	}
	return &t, true
}
