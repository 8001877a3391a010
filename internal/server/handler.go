package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/valpere/transedge/internal"
	"github.com/valpere/transedge/internal/service"
)

const DefaultMaxBodyBytes = 64 << 10

// translateHandler serves the single method-dispatched translation route.
type translateHandler struct {
	svc          *service.TranslationService
	maxBodyBytes int64
	logger       *zap.Logger
}

func (h *translateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "OK")
		return
	case http.MethodPost:
	default:
		h.writeError(w, r, service.NewMethodNotAllowedError(r.Method), "")
		return
	}

	var req internal.TranslationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, r, service.NewInternalError(err), "")
		return
	}

	// The provider call is not tied to the client connection: a caller that
	// goes away does not cancel a translation already in flight.
	ctx := context.WithoutCancel(r.Context())

	tr, err := h.svc.Translate(ctx, req)
	if err != nil {
		h.writeError(w, r, err, req.Language)
		return
	}

	h.logger.Debug("translation served",
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("language", tr.Language),
		zap.String("model", tr.Model),
		zap.Duration("provider_latency", tr.Latency),
	)
	writeJSON(w, http.StatusOK, internal.TranslationResponse{TranslationText: tr.Text})
}

func (h *translateHandler) writeError(w http.ResponseWriter, r *http.Request, err error, language string) {
	se, ok := service.AsServiceError(err)
	if !ok {
		se = &service.ServiceError{Code: service.ErrorInternal, Message: service.MsgTranslationFailed, Cause: err}
	}
	status := statusFor(se.Code)

	fields := []zap.Field{
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("code", string(se.Code)),
		zap.Int("status", status),
	}
	if language != "" {
		fields = append(fields, zap.String("language", language))
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("translation failed", append(fields, zap.Error(err))...)
	} else {
		h.logger.Debug("request rejected", append(fields, zap.String("reason", se.Message))...)
	}

	writeJSON(w, status, errorBody(se.Message))
}

func statusFor(code service.ErrorCode) int {
	switch code {
	case service.ErrorInvalid:
		return http.StatusBadRequest
	case service.ErrorMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(msg string) internal.TranslationResponse {
	return internal.TranslationResponse{Error: msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
