// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/service"
	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/google/uuid"
)

// ErrNoUserInContext is reported by write handlers reached without the
// Basic auth middleware having stored a user id. It is a wiring bug and is
// answered with 500.
var ErrNoUserInContext = errors.New("no authenticated user in request context")

// ErrRequestBodyTooLarge is reported when a body, after gzip decompression,
// exceeds the configured limit. It is answered with 413.
var ErrRequestBodyTooLarge = errors.New("request body too large")

// decodeBody decodes the JSON body of r into v. A body cut off by
// withBodyLimit yields ErrRequestBodyTooLarge, anything else unreadable
// yields service.ErrInvalidDataProvided.
func decodeBody(r *http.Request, v any) error {
	err := utils.DecodeJSON(r.Body, v)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

// authenticatedUser returns the user stored by basicAuth. When it is missing
// the error response is already written and ok is false.
func authenticatedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return uuid.Nil, false
	}
	return userID, true
}
