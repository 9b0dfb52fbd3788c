package http

import (
	"net/http"

	"github.com/flavorvault/recipe-service/internal/application"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}

	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "login")
		return
	}
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	view, err := h.service.Login(r.Context(), sid, req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"next":    "verification_required",
		"session": view,
	})
}

func (h *Handler) sendCode(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "send_code")
		return
	}
	if err := h.service.SendCode(r.Context(), sid); err != nil {
		writeMappedError(r.Context(), w, "send_code", err)
		return
	}
	writeMessage(w, http.StatusOK, "Verification code sent")
}

func (h *Handler) verifyCode(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "verify_code")
		return
	}
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "verify_code", err)
		return
	}

	view, err := h.service.VerifyCode(r.Context(), sid, req.Code)
	if err != nil {
		writeMappedError(r.Context(), w, "verify_code", err)
		return
	}
	writeSuccess(w, http.StatusOK, view)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "logout")
		return
	}
	if err := h.service.Logout(r.Context(), sid); err != nil {
		writeMappedError(r.Context(), w, "logout", err)
		return
	}
	h.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "session")
		return
	}
	view, err := h.service.Session(r.Context(), sid)
	if err != nil {
		writeMappedError(r.Context(), w, "session", err)
		return
	}
	writeSuccess(w, http.StatusOK, view)
}
