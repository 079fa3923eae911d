package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/app/service"
	"github.com/atinyakov/tinyapp/internal/middleware"
	"github.com/atinyakov/tinyapp/internal/models"
	"github.com/atinyakov/tinyapp/internal/storage"
)

type GetHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewGet(s service.URLServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// ByShort redirects to the destination of a short code and records the visit.
func (h *GetHandler) ByShort(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	short := chi.URLParam(req, "id")
	visitorID := middleware.VisitorIDFromContext(req.Context())

	target, err := h.service.Visit(ctx, short, visitorID)
	if err != nil {
		if target == "" || errors.Is(err, storage.ErrNotFound) {
			writeError(res, h.logger, err)
			return
		}
		h.logger.Warn("visit not recorded", zap.String("short", short), zap.Error(err))
	}

	res.Header().Set("Location", target)
	res.WriteHeader(http.StatusTemporaryRedirect)
}

// URLsByUserID lists the short codes of the logged in user.
func (h *GetHandler) URLsByUserID(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	records := h.service.ListURLs(ctx, userID)
	urls := make([]models.URLResponse, 0, len(records))
	for i := range records {
		urls = append(urls, toURLResponse(h.service, &records[i]))
	}

	writeJSON(res, h.logger, http.StatusOK, urls)
}

// ByID shows an owned short code with its visit statistics.
func (h *GetHandler) ByID(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	rec, err := h.service.GetOwnedURL(ctx, chi.URLParam(req, "id"), userID)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, toDetailsResponse(h.service, rec))
}

// Stats reports the number of stored URLs and users.
func (h *GetHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	writeJSON(res, h.logger, http.StatusOK, h.service.Stats(ctx))
}
