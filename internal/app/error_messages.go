// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// market API handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"error": ...} envelope of HTTP responses. Keeping them in one place keeps
// the wording consistent throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as the JSON payload of the route.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgRequestBodyTooLarge is returned when the request body, after gzip
	// decompression, is larger than the server accepts.
	MsgRequestBodyTooLarge = "request body too large"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidCredentials = "invalid credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNothingDeleted is returned when DELETE /asks or DELETE /bids names
	// an id that is not stored.
	MsgNothingDeleted = "nothing was deleted"

	// MsgUsernameAlreadyExists is reported by the user creation tool.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgRequestCancelled is returned when the request context ends before
	// the response is ready.
	MsgRequestCancelled = "request cancelled"
)
