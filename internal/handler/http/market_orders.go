package http

import (
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/validators"
	"github.com/MKhiriev/go-nft-market/models"
	"github.com/google/uuid"
)

func (h *Handler) listAsks(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "*Handler.listAsks", validators.NewAskFilter, h.services.AskService.ListAsks)
}

func (h *Handler) insertAsk(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var ask models.AskForInsert
	if err := decodeBody(r, &ask); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AskService.InsertAsk(r.Context(), ask); err != nil {
		writeError(w, r, err)
		return
	}

	logOrderChange(r, userID, "*Handler.insertAsk", "ask inserted")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) deleteAsk(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var request models.DeleteRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AskService.DeleteAsk(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	logOrderChange(r, userID, "*Handler.deleteAsk", "ask deleted")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listBids(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "*Handler.listBids", validators.NewBidFilter, h.services.BidService.ListBids)
}

func (h *Handler) insertBid(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var bid models.BidForInsert
	if err := decodeBody(r, &bid); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.BidService.InsertBid(r.Context(), bid); err != nil {
		writeError(w, r, err)
		return
	}

	logOrderChange(r, userID, "*Handler.insertBid", "bid inserted")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) deleteBid(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var request models.DeleteRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.BidService.DeleteBid(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	logOrderChange(r, userID, "*Handler.deleteBid", "bid deleted")
	w.WriteHeader(http.StatusOK)
}

func logOrderChange(r *http.Request, userID uuid.UUID, funcName, msg string) {
	logger.FromRequest(r).Info().Str("func", funcName).Stringer("user_id", userID).Msg(msg)
}
