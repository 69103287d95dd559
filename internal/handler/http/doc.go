// Package http implements the HTTP transport of the market API.
//
// It wires the chi router, the list and write handlers, and the middleware
// chain: panic recovery, request timeout, trace ids, access logging, gzip and
// Basic authentication of write routes. Errors from lower layers are mapped
// to statuses and {"error": ...} envelopes in one place.
package http
