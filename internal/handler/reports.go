package handler

import "net/http"

// GetReportSummary returns the current-month summary with trend and health
func (h *Handler) GetReportSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.GetSummary(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, summary)
}

// GetProjectReport returns per-project financials with category breakdowns
func (h *Handler) GetProjectReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.GetByProject(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, report)
}

// GetCashflowTable returns the four-month planning table
func (h *Handler) GetCashflowTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.reports.GetCashflowTable(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, table)
}
