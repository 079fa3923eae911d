package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/app/service"
	"github.com/atinyakov/tinyapp/internal/middleware"
)

type DeleteHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewDelete(s service.URLServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// DeleteURL removes an owned short code.
func (h *DeleteHandler) DeleteURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	short := chi.URLParam(req, "id")
	if err := h.service.DeleteURL(ctx, short, userID); err != nil {
		writeError(res, h.logger, err)
		return
	}
	h.logger.Info("short url deleted", zap.String("short", short), zap.String("user", userID))

	res.WriteHeader(http.StatusNoContent)
}
