// Package v1handler serves the marketplace REST API under /v1.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"agenthub/internal/marketplace"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

type Deps struct {
	Marketplace marketplace.Service
}

type Handler struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{
		deps:     deps,
		validate: validate,
	}
}

// Routes returns the v1 router. Every request passes through sec, which
// resolves the caller from an optional bearer token; mutations additionally
// require an authenticated caller.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(sec.Authenticate)

	r.Route("/agents", func(r chi.Router) {
		r.Get("/", h.ListAgents)
		r.Get("/search", h.SearchAgents)
		r.With(RequireAuth).Post("/", h.CreateAgent)
		r.Route("/{agentID}", func(r chi.Router) {
			r.Get("/", h.GetAgent)
			r.With(RequireAuth).Patch("/", h.UpdateAgent)
			r.With(RequireAuth).Delete("/", h.DeleteAgent)
			r.Post("/demo", h.Demo)
			r.With(RequireAuth).Post("/purchase", h.Purchase)
			r.Get("/stats", h.AgentStats)
			r.Get("/earnings", h.AgentEarnings)
		})
	})

	r.Route("/jobs", func(r chi.Router) {
		r.With(RequireAuth).Get("/", h.ListJobs)
		r.Get("/stats", h.JobStats)
		r.Get("/{jobID}", h.GetJob)
	})

	r.Route("/users", func(r chi.Router) {
		r.With(RequireAuth).Post("/", h.RegisterUser)
		r.With(RequireAuth).Get("/me", h.GetMe)
		r.With(RequireAuth).Patch("/me", h.UpdateMe)
		r.Get("/{userID}", h.GetUser)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Use(RequireAuth)
		r.Get("/", h.ListTransactions)
		r.Get("/{transactionID}", h.GetTransaction)
		r.Post("/{transactionID}/verify", h.VerifyTransaction)
	})

	r.Route("/wallets/{address}", func(r chi.Router) {
		r.Get("/balance", h.WalletBalance)
		r.Get("/earnings", h.WalletEarnings)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "method not allowed"))
	})

	return r
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorBody
}

var kindStatuses = []struct {
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError converts err into the response sent to the client. Errors without
// a client-facing kind are logged and reported as internal errors.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	for _, ks := range kindStatuses {
		if kind != ks.kind {
			continue
		}
		msg := serrors.MessageOf(err)
		if msg == "" || msg == kind.Error() {
			msg = ks.message
		}
		if ks.status >= http.StatusInternalServerError {
			logger.Warn(ctx, "dependency failure", zap.Error(err))
		}

		return &ErrorStatusCode{
			StatusCode: ks.status,
			Response:   ErrorBody{Code: kind.Error(), Message: msg},
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(r *http.Request, dst any) error {
	return h.decodeBody(r, dst, false)
}

// decodeOptional is decode for endpoints whose body may be omitted.
func (h *Handler) decodeOptional(r *http.Request, dst any) error {
	return h.decodeBody(r, dst, true)
}

func (h *Handler) decodeBody(r *http.Request, dst any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			if optional {
				return h.validateStruct(dst)
			}

			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return h.validateStruct(dst)
}

func (h *Handler) validateStruct(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("could not validate request: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return serrors.With(serrors.ErrBadRequest, "%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	}

	return fmt.Sprintf("%s failed on %s", field, fe.Tag())
}
