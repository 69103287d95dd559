package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/app"
	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/service"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/MKhiriev/go-nft-market/internal/validators"
)

// statusClientClosedRequest is the non-standard status logged when the
// client went away before the response was written.
const statusClientClosedRequest = 499

var errorStatusMap = map[error]int{
	validators.ErrValidation:       http.StatusBadRequest,
	utils.ErrBadAuthRequest:        http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrRequestBodyTooLarge:         http.StatusRequestEntityTooLarge,

	store.ErrNothingDeleted:        http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusConflict,

	service.ErrUnexpected:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
}

// statusFromError maps err to a status. Context errors take precedence:
// a store error caused by a cancelled request is not a server failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to the client. Only validation and
// header parsing failures echo their cause; everything else gets a fixed
// message so that internals never leak.
func messageFromError(err error) string {
	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, utils.ErrBadAuthRequest):
		return err.Error()
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrRequestBodyTooLarge):
		return app.MsgRequestBodyTooLarge
	case errors.Is(err, store.ErrNothingDeleted):
		return app.MsgNothingDeleted
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return app.MsgUsernameAlreadyExists
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return app.MsgRequestCancelled
	default:
		return app.MsgInternalServerError
	}
}

// writeError logs err with its full chain and writes the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	_, _ = utils.WriteError(w, messageFromError(err), status)
}
