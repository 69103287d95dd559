package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Realms announced in the WWW-Authenticate challenge of each write route.
const (
	realmSales     = "sales"
	realmNftTokens = "nft_tokens"
	realmAsks      = "asks"
	realmBids      = "bids"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withTimeout, withGZip, h.withBodyLimit)

	router.Get("/health_check", h.healthCheck)
	router.Get("/version", h.getServerVersion)

	router.Get("/paid", h.paid)
	router.Post("/users/{owner_id}/is_owner", h.isOwner)

	router.Get("/sales", h.listSales)
	router.Get("/nft_tokens", h.listNftTokens)
	router.Get("/asks", h.listAsks)
	router.Get("/bids", h.listBids)

	// write routes, each behind its own Basic auth realm
	router.With(h.basicAuth(realmSales)).Post("/sales", h.insertSale)
	router.With(h.basicAuth(realmNftTokens)).Post("/nft_tokens", h.insertNftToken)
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth(realmAsks))
		r.Post("/asks", h.insertAsk)
		r.Delete("/asks", h.deleteAsk)
	})
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth(realmBids))
		r.Post("/bids", h.insertBid)
		r.Delete("/bids", h.deleteBid)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
