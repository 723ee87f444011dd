package handlers

import (
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
)

// Sentinel errors returned by services. Wrap them with fmt.Errorf("...: %w", ErrX)
// so the message reaches the client and the status is chosen here.
var (
	ErrInvalid      = errors.New("invalid request")
	ErrUnauthorized = errors.New("not authorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// ToHumaError maps a service error to the matching HTTP status. Unknown errors
// become 500 with fallback as the message and err attached.
func ToHumaError(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}

	switch {
	case errors.Is(err, ErrInvalid):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, ErrUnauthorized):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, ErrConflict):
		return huma.Error409Conflict(err.Error())
	default:
		slog.Error(fallback, "error", err)
		return huma.Error500InternalServerError(fallback, err)
	}
}
