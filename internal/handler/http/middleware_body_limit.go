package http

import "net/http"

// withBodyLimit caps the request body at maxBodyBytes. It runs after withGZip,
// so the limit applies to the decompressed stream.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	if h.maxBodyBytes <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
