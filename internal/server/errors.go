// Package server provides the HTTP REST API for the career intelligence
// service.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/report"
	"github.com/jonathan/career-insights/internal/roster"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Input errors map to 400/404, approval gating to 403, model-service
// failures to 502, everything else to 500.
func HTTPStatus(err error) int {
	var (
		missingCol  *roster.MissingColumnError
		notFound    *roster.NotFoundError
		parseErr    *roster.ParseError
		approvalErr *report.ApprovalError
		serviceErr  *llm.ServiceError
	)

	switch {
	case errors.As(err, &missingCol), errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &approvalErr):
		return http.StatusForbidden
	case errors.As(err, &serviceErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
