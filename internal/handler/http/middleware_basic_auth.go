// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/service"
	"github.com/MKhiriev/go-nft-market/internal/utils"
)

const wwwAuthenticateHeader = "WWW-Authenticate"

// basicAuth returns a middleware that admits only requests carrying valid
// HTTP Basic credentials.
//
// The request is rejected before reaching next when:
//   - the Authorization header cannot be parsed: 400;
//   - the username is unknown or the password is wrong: 401, with the same
//     body in both cases;
//   - verification fails unexpectedly: 500.
//
// 400 and 401 responses carry a `WWW-Authenticate: Basic realm="<realm>"`
// challenge. On success the user id is stored in the request context under
// [utils.UserIDCtxKey] and, with the username, added to the request logger.
func (h *Handler) basicAuth(realm string) func(http.Handler) http.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, err := utils.ParseBasicAuth(r.Header)
			if err != nil {
				w.Header().Set(wwwAuthenticateHeader, challenge)
				writeError(w, r, err)
				return
			}

			userID, err := h.services.AuthService.VerifyCredentials(r.Context(), creds)
			if err != nil {
				if errors.Is(err, service.ErrInvalidCredentials) {
					w.Header().Set(wwwAuthenticateHeader, challenge)
				}
				writeError(w, r, err)
				return
			}

			l := logger.FromRequest(r).With().
				Str("username", creds.Username).
				Str("user_id", userID.String()).
				Logger()

			ctx := context.WithValue(l.WithContext(r.Context()), utils.UserIDCtxKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
