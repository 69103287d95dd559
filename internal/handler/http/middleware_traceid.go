package http

import (
	"net/http"
	"regexp"
)

const traceIDHeader = "X-Trace-ID"

// validTraceID bounds what a client may inject into our logs.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID.MatchString(traceID) {
			traceID = h.traceIDs.Generate().String()
		}

		l := h.logger.With().Str("trace_id", traceID).Logger()
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
