package http

import (
	"encoding/json"
	"net/http"

	"odms-backend/internal/service"
)

// AuthHandler exposes OTP login over HTTP
type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type otpRequestPayload struct {
	Email string `json:"email"`
}

type loginPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var payload otpRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.auth.RequestOTP(r.Context(), payload.Email); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "OTP sent"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" || payload.Code == "" {
		writeError(w, http.StatusBadRequest, "email and code are required")
		return
	}

	token, user, err := h.auth.VerifyOTP(r.Context(), payload.Email, payload.Code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"user":         user,
	})
}
