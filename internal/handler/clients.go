package handler

import "net/http"

// CreateClient registers a new business counterparty
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	if in.Name == "" {
		h.badRequest(w, "name is required")
		return
	}

	client, err := h.clients.Create(r.Context(), companyID(r), in.Name, in.Type)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, client)
}

// ListClients returns the company's clients
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context(), companyID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, clients)
}
