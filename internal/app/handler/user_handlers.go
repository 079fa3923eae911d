package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/app/service"
	"github.com/atinyakov/tinyapp/internal/middleware"
	"github.com/atinyakov/tinyapp/internal/models"
)

type UserHandler struct {
	users  service.UserServiceIface
	auth   service.AuthIface
	logger *zap.Logger
}

func NewUser(users service.UserServiceIface, auth service.AuthIface, l *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		auth:   auth,
		logger: l,
	}
}

// Register creates an account and logs it in.
func (h *UserHandler) Register(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var creds models.Credentials
	if err := decodeRequest(res, req, &creds); err != nil {
		writeError(res, h.logger, err)
		return
	}

	u, err := h.users.Register(ctx, creds.Email, creds.Password)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}
	h.logger.Info("user registered", zap.String("user", u.ID))

	h.startSession(res, u, http.StatusCreated)
}

// Login checks the credentials and issues a session cookie.
func (h *UserHandler) Login(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var creds models.Credentials
	if err := decodeRequest(res, req, &creds); err != nil {
		writeError(res, h.logger, err)
		return
	}

	u, err := h.users.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	h.startSession(res, u, http.StatusOK)
}

// Logout clears the session cookie.
func (h *UserHandler) Logout(res http.ResponseWriter, _ *http.Request) {
	middleware.ClearSessionCookie(res)
	res.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) startSession(res http.ResponseWriter, u *models.User, status int) {
	token, err := h.auth.BuildJWTString(u.ID)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	middleware.SetSessionCookie(res, token)
	writeJSON(res, h.logger, status, u)
}
