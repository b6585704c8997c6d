package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
)

// GetSettings returns the company's cash settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	company, err := h.company.GetSettings(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, company)
}

// UpdateSettings sets the bank balance and danger line
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in struct {
		BankBalance decimal.Decimal `json:"bank_balance"`
		DangerLine  decimal.Decimal `json:"danger_line"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	if in.DangerLine.IsNegative() {
		h.badRequest(w, "danger_line must not be negative")
		return
	}

	company, err := h.company.UpdateSettings(r.Context(), companyID(r), in.BankBalance, in.DangerLine)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, company)
}
