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

type PostHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewPost(s service.URLServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// CreateURL shortens the posted longURL for the logged in user.
func (h *PostHandler) CreateURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateURLRequest
	if err := decodeRequest(res, req, &request); err != nil {
		writeError(res, h.logger, err)
		return
	}

	rec, err := h.service.CreateURL(ctx, request.LongURL, userID)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusCreated, toURLResponse(h.service, rec))
}
