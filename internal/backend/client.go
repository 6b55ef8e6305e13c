package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"room-booking-web/internal/metrics"
)

// APIError is returned when a backend answers with a non-2xx status.
type APIError struct {
	Service string
	Status  int
	Code    string // the body's "error" field
	Detail  string // the body's "message" field
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s service returned status %d", e.Service, e.Status)
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// IsUnauthorized reports whether err is a 401/403 answer from a backend.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// MessageOr returns the server-provided error text carried by err, or fallback.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Code) != "" {
		return apiErr.Code
	}
	return fallback
}

// client wraps a resty client bound to one backend service.
type client struct {
	service string
	http    *resty.Client
	logger  *zap.Logger
}

func newClient(service, baseURL string, timeout time.Duration, logger *zap.Logger) *client {
	if logger == nil {
		logger = zap.NewNop()
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		metrics.BackendRequestsTotal.WithLabelValues(service, resp.Request.Method, strconv.Itoa(resp.StatusCode())).Inc()
		metrics.BackendRequestDuration.WithLabelValues(service).Observe(resp.Time().Seconds())
		return nil
	})
	rc.OnError(func(req *resty.Request, err error) {
		metrics.BackendRequestsTotal.WithLabelValues(service, req.Method, "error").Inc()
	})

	return &client{
		service: service,
		http:    rc,
		logger:  logger.With(zap.String("backend", service)),
	}
}

// request starts a request carrying the bearer token, if any.
func (c *client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// execute sends req and decodes a 2xx JSON body into out (when non-nil).
func (c *client) execute(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if !resp.IsSuccess() {
		apiErr := &APIError{Service: c.service, Status: resp.StatusCode()}
		var body errorBody
		if json.Unmarshal(resp.Body(), &body) == nil {
			apiErr.Code = body.Error
			apiErr.Detail = body.Message
		}
		c.logger.Info("backend returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("error_code", apiErr.Code),
		)
		return apiErr
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
