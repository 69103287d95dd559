package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/MKhiriev/go-nft-market/models"
)

// serveList runs the shared read path of the list routes: raw query
// extraction, filter assembly, the service call and the rows envelope.
func serveList[F any, T any](
	w http.ResponseWriter,
	r *http.Request,
	funcName string,
	assemble func(models.RawQuery) (F, error),
	list func(context.Context, F) (models.RowsReport[T], error),
) {
	raw, err := rawQueryFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter, err := assemble(raw)
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := list(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("func", funcName).
		Int("rows", len(report.Rows)).
		Bool("end", report.End).
		Msg("rows listed")

	_, _ = utils.WriteJSON(w, report, http.StatusOK)
}
