package handler

import "net/http"

// GetDashboard returns the landing screen data for the caller's role
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.GetDashboard(r.Context(), companyID(r), userID(r), role(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, dashboard)
}

// GetSignals returns the three-month signal forecast
func (h *Handler) GetSignals(w http.ResponseWriter, r *http.Request) {
	signals, err := h.dashboard.GetSignals(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, signals)
}

// GetChart returns the half-month balance trajectory
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.dashboard.GetChart(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, chart)
}

// GetAlerts returns the current alert list
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.dashboard.GetAlerts(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, alerts)
}
