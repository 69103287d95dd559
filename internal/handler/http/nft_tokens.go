package http

import (
	"net/http"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/MKhiriev/go-nft-market/internal/validators"
	"github.com/MKhiriev/go-nft-market/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNftTokens(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "*Handler.listNftTokens", validators.NewNftTokenFilter, h.services.NftTokenService.ListNftTokens)
}

func (h *Handler) insertNftToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var token models.NftTokenForInsert
	if err := decodeBody(r, &token); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.NftTokenService.InsertNftToken(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.insertNftToken").
		Str("token_id", token.TokenID).
		Stringer("user_id", userID).
		Msg("nft token inserted")

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) isOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "owner_id")

	var tokenIDs []string
	if err := decodeBody(r, &tokenIDs); err != nil {
		writeError(w, r, err)
		return
	}

	owns, err := h.services.NftTokenService.IsOwner(r.Context(), ownerID, tokenIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.IsOwnerResult{Result: owns}, http.StatusOK)
}
