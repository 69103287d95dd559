package http

import (
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/MKhiriev/go-nft-market/internal/validators"
	"github.com/MKhiriev/go-nft-market/models"
)

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "*Handler.listSales", validators.NewSaleFilter, h.services.SaleService.ListSales)
}

func (h *Handler) paid(w http.ResponseWriter, r *http.Request) {
	raw, err := rawQueryFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter, err := validators.NewPaidFilter(raw)
	if err != nil {
		writeError(w, r, err)
		return
	}

	paid, err := h.services.SaleService.Paid(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, paid, http.StatusOK)
}

func (h *Handler) insertSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var sale models.SaleForInsert
	if err := decodeBody(r, &sale); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.SaleService.InsertSale(r.Context(), sale); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.insertSale").
		Str("token_id", sale.TokenID).
		Stringer("user_id", userID).
		Msg("sale inserted")

	w.WriteHeader(http.StatusCreated)
}
