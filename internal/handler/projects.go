package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/genbahq/cashsignal/internal/service"
)

// CreateProject registers a new project
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in service.ProjectInput
	if !h.decode(w, r, &in) {
		return
	}
	if in.Name == "" || in.ClientID == "" {
		h.badRequest(w, "name and client_id are required")
		return
	}

	project, err := h.projects.Create(r.Context(), companyID(r), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, project)
}

// UpdateProject modifies an existing project
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var in service.ProjectInput
	if !h.decode(w, r, &in) {
		return
	}

	project, err := h.projects.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, project)
}

// GetProject returns a single project
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.FindOne(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, project)
}

// ListProjects returns the company's projects with realized totals
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context(), companyID(r), userID(r), role(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, projects)
}
