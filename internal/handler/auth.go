package handler

import (
	"net/http"

	"github.com/genbahq/cashsignal/internal/service"
)

// Register handles company signup with its owner account
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if !h.decode(w, r, &in) {
		return
	}
	if in.CompanyName == "" || in.Email == "" || in.Password == "" {
		h.badRequest(w, "company_name, email and password are required")
		return
	}

	result, err := h.auth.Register(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, result)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !h.decode(w, r, &in) {
		return
	}

	result, err := h.auth.Login(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, result)
}
