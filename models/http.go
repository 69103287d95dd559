package models

// RawQuery carries the untrusted query parameters of a list request.
// A nil field means the parameter was absent from the query string.
type RawQuery struct {
	Limit   *int64
	Offset  *int64
	Days    *int64
	TokenID *string
	OwnerID *string
}

// Page is the validated window of a list request.
// The store fetches Limit+1 rows starting at Offset.
type Page struct {
	Limit  int64
	Offset int64
}

// SaleFilter narrows GET /sales.
type SaleFilter struct {
	Page

	// TokenID is empty when no token filter was requested.
	TokenID string
}

// PaidFilter narrows GET /paid to the sales of the last Days days.
type PaidFilter struct {
	Page

	Days int64
}

// NftTokenFilter narrows GET /nft_tokens.
type NftTokenFilter struct {
	Page

	TokenID string
	OwnerID string
}

// AskFilter narrows GET /asks.
type AskFilter struct {
	Page

	TokenID string
}

// BidFilter narrows GET /bids.
type BidFilter struct {
	Page

	TokenID string
}

// DeleteRequest identifies the ask or bid removed by DELETE /asks and DELETE /bids.
type DeleteRequest struct {
	ID int64 `json:"id"`
}

// IsOwnerResult is the response of POST /users/{owner_id}/is_owner.
type IsOwnerResult struct {
	Result bool `json:"result"`
}

// ErrorResponse is the envelope of every error returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
