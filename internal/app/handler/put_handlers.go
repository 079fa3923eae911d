package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/app/service"
	"github.com/atinyakov/tinyapp/internal/middleware"
	"github.com/atinyakov/tinyapp/internal/models"
)

type PutHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewPut(s service.URLServiceIface, l *zap.Logger) *PutHandler {
	return &PutHandler{
		service: s,
		logger:  l,
	}
}

// UpdateURL points an owned short code at a new destination.
func (h *PutHandler) UpdateURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.EditURLRequest
	if err := decodeRequest(res, req, &request); err != nil {
		writeError(res, h.logger, err)
		return
	}

	rec, err := h.service.UpdateURL(ctx, chi.URLParam(req, "id"), request.Target(), userID)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, toURLResponse(h.service, rec))
}
