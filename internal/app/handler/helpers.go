// Package handler contains the HTTP handlers of the service. It decodes
// form or JSON request bodies, calls the account and URL services and maps
// their errors to HTTP status codes.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/models"
	"github.com/atinyakov/tinyapp/internal/storage"
)

const maxBodySize = 1048576

var validate = validator.New(validator.WithRequiredStructEnabled())

// malformedRequest represents an error with a malformed HTTP request.
type malformedRequest struct {
	status int
	msg    string
}

func (mr *malformedRequest) Error() string {
	return mr.msg
}

// formRequest is a request body that can also be posted as a form.
type formRequest interface {
	FromForm(url.Values)
}

// decodeRequest fills dst from an urlencoded form or a JSON body and runs the
// struct validation rules.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst formRequest) error {
	switch mediaType(r) {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			return &malformedRequest{status: http.StatusBadRequest, msg: "Request body contains a malformed form"}
		}
		dst.FromForm(r.PostForm)
	default:
		if err := decodeJSONBody(w, r, dst); err != nil {
			return err
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", storage.ErrEmptyField, strings.ToLower(verrs[0].Field()))
		}
		return err
	}
	return nil
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	return strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
}

// decodeJSONBody decodes a JSON request body into the given destination struct.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if mt := mediaType(r); mt != "" && mt != "application/json" {
		msg := "Content-Type header is not application/json or application/x-www-form-urlencoded"
		return &malformedRequest{status: http.StatusUnsupportedMediaType, msg: msg}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.ErrUnexpectedEOF):
			msg := "Request body contains badly-formed JSON"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.EOF):
			msg := "Request body must not be empty"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &maxBytesError):
			msg := "Request body must not be larger than 1MB"
			return &malformedRequest{status: http.StatusRequestEntityTooLarge, msg: msg}

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		msg := "Request body must only contain a single JSON object"
		return &malformedRequest{status: http.StatusBadRequest, msg: msg}
	}

	return nil
}

// writeError answers with the status matching err. Unknown errors are logged
// and answered with 500.
func writeError(res http.ResponseWriter, logger *zap.Logger, err error) {
	var mr *malformedRequest

	switch {
	case errors.As(err, &mr):
		http.Error(res, mr.msg, mr.status)
	case errors.Is(err, storage.ErrEmptyField):
		http.Error(res, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrDuplicateEmail):
		http.Error(res, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrInvalidCredential):
		http.Error(res, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(res, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrOwnership):
		http.Error(res, err.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrCapacityExhausted):
		http.Error(res, err.Error(), http.StatusServiceUnavailable)
	default:
		logger.Error("request failed", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeJSON(res http.ResponseWriter, logger *zap.Logger, status int, v any) {
	response, err := json.Marshal(v)
	if err != nil {
		logger.Error("cannot marshal response", zap.Error(err))
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if _, err := res.Write(response); err != nil {
		logger.Debug("cannot write response", zap.Error(err))
	}
}

type shortURLer interface {
	ShortURL(short string) string
}

func toURLResponse(s shortURLer, rec *models.URLRecord) models.URLResponse {
	return models.URLResponse{
		ShortCode: rec.Short,
		ShortURL:  s.ShortURL(rec.Short),
		LongURL:   rec.Original,
	}
}

func toDetailsResponse(s shortURLer, rec *models.URLRecord) models.URLDetailsResponse {
	visits := make([]models.VisitResponse, 0, len(rec.Visits.Entries))
	for _, v := range rec.Visits.Entries {
		visits = append(visits, models.VisitResponse{VisitorID: v.VisitorID, At: v.At})
	}

	return models.URLDetailsResponse{
		URLResponse:    toURLResponse(s, rec),
		CreatedAt:      rec.CreatedAt,
		TotalVisits:    rec.Visits.Total(),
		UniqueVisitors: rec.Visits.Unique(),
		Visits:         visits,
	}
}
