package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"odms-backend/internal/service"
)

// AdminHandler exposes user administration and master data import
type AdminHandler struct {
	admin    service.AdminService
	importer service.ImportService
}

func NewAdminHandler(admin service.AdminService, importer service.ImportService) *AdminHandler {
	return &AdminHandler{admin: admin, importer: importer}
}

type updateRolePayload struct {
	Role string `json:"role"`
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var payload updateRolePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Role == "" {
		writeError(w, http.StatusBadRequest, "role is required")
		return
	}

	if err := h.admin.UpdateUserRole(r.Context(), userID, payload.Role); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "role updated"})
}

func (h *AdminHandler) ImportStudents(w http.ResponseWriter, r *http.Request) {
	h.importCSV(w, r, h.importer.ImportStudents)
}

func (h *AdminHandler) ImportFaculty(w http.ResponseWriter, r *http.Request) {
	h.importCSV(w, r, h.importer.ImportFaculty)
}

func (h *AdminHandler) importCSV(w http.ResponseWriter, r *http.Request, importFn func(context.Context, io.Reader) (int, error)) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart file field 'file' is required")
		return
	}
	defer file.Close()

	count, err := importFn(r.Context(), file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}

func (h *AdminHandler) ClearStudents(w http.ResponseWriter, r *http.Request) {
	if err := h.importer.ClearStudents(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "student master cleared"})
}

func (h *AdminHandler) ClearFaculty(w http.ResponseWriter, r *http.Request) {
	if err := h.importer.ClearFaculty(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "faculty master cleared"})
}
