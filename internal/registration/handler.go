package registration

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"go.uber.org/zap"

	"github.com/ib-77/fpkit/pkg/fp/deferred"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

const maxRequestBytes = 1 << 20

var (
	errMissingFields = NewValidationError("email and password are required")
	errMalformedBody = NewValidationError("malformed request body")
)

// Handler exposes the Service over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
	decoder *schema.Decoder
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Handler{
		service: service,
		logger:  logger,
		decoder: decoder,
	}
}

func (h *Handler) Routes(router *mux.Router) {
	router.Path("/users").Methods(http.MethodPost).HandlerFunc(h.Register)
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	req := result.FailOnError(h.decode(r), func(req Request) error {
		if req.Email == "" || req.Password == "" {
			return errMissingFields
		}
		return nil
	})

	registration := deferred.FlatMap(deferred.FromResult(req), func(req Request) deferred.Deferred[Response, error] {
		return h.service.Register(r.Context(), req)
	})

	outcome, err := deferred.Await(r.Context(), registration)
	if err != nil {
		h.logger.Warn("registration abandoned", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "request cancelled"})
		return
	}

	result.Fold(outcome, func(err error) struct{} {
		h.writeError(w, err)
		return struct{}{}
	}, func(resp Response) struct{} {
		h.writeJSON(w, http.StatusCreated, resp)
		return struct{}{}
	})
}

func (h *Handler) decode(r *http.Request) result.Result[error, Request] {
	decoded := result.Try(func() (Request, error) {
		var req Request

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/x-www-form-urlencoded" {
			if err := r.ParseForm(); err != nil {
				return req, err
			}
			return req, h.decoder.Decode(&req, r.PostForm)
		}

		return req, json.NewDecoder(r.Body).Decode(&req)
	})

	return result.MapFailure(decoded, func(err error) error {
		h.logger.Debug("undecodable registration request", zap.Error(err))
		return errMalformedBody
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: ve.Message})
		return
	}

	h.logger.Error("registration failed", zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
