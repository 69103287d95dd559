// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/go-chi/chi/v5"
)

const msgRouteNotFound = "the requested resource was not found"

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A method that the matched route does not serve is answered with 404, as
// if the route did not exist. Patterns are compared verbatim, so a path with
// URL parameters never matches and is answered with 404 straight away.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteError(w, msgRouteNotFound, http.StatusNotFound)
}
