package validators

import "github.com/MKhiriev/go-nft-market/models"

// Filters are assembled field by field and fail on the first invalid value.
// Fields are always checked in the same order: token_id, owner_id, limit,
// offset, days.

func NewSaleFilter(raw models.RawQuery) (models.SaleFilter, error) {
	tokenID, err := Parse(raw.TokenID, TokenIDPolicy)
	if err != nil {
		return models.SaleFilter{}, err
	}

	page, err := parsePage(raw)
	if err != nil {
		return models.SaleFilter{}, err
	}

	if _, err = Parse(raw.Days, ForbiddenDaysPolicy(RouteSales)); err != nil {
		return models.SaleFilter{}, err
	}

	return models.SaleFilter{Page: page, TokenID: tokenID}, nil
}

func NewPaidFilter(raw models.RawQuery) (models.PaidFilter, error) {
	page, err := parsePage(raw)
	if err != nil {
		return models.PaidFilter{}, err
	}

	days, err := Parse(raw.Days, PaidDaysPolicy)
	if err != nil {
		return models.PaidFilter{}, err
	}

	return models.PaidFilter{Page: page, Days: days}, nil
}

func NewNftTokenFilter(raw models.RawQuery) (models.NftTokenFilter, error) {
	tokenID, err := Parse(raw.TokenID, TokenIDPolicy)
	if err != nil {
		return models.NftTokenFilter{}, err
	}

	ownerID, err := Parse(raw.OwnerID, OwnerIDPolicy)
	if err != nil {
		return models.NftTokenFilter{}, err
	}

	page, err := parsePage(raw)
	if err != nil {
		return models.NftTokenFilter{}, err
	}

	if _, err = Parse(raw.Days, ForbiddenDaysPolicy(RouteNftTokens)); err != nil {
		return models.NftTokenFilter{}, err
	}

	return models.NftTokenFilter{Page: page, TokenID: tokenID, OwnerID: ownerID}, nil
}

func NewAskFilter(raw models.RawQuery) (models.AskFilter, error) {
	tokenID, page, err := parseTokenPage(raw, RouteAsks)
	if err != nil {
		return models.AskFilter{}, err
	}

	return models.AskFilter{Page: page, TokenID: tokenID}, nil
}

func NewBidFilter(raw models.RawQuery) (models.BidFilter, error) {
	tokenID, page, err := parseTokenPage(raw, RouteBids)
	if err != nil {
		return models.BidFilter{}, err
	}

	return models.BidFilter{Page: page, TokenID: tokenID}, nil
}

func parsePage(raw models.RawQuery) (models.Page, error) {
	limit, err := Parse(raw.Limit, LimitPolicy)
	if err != nil {
		return models.Page{}, err
	}

	offset, err := Parse(raw.Offset, OffsetPolicy)
	if err != nil {
		return models.Page{}, err
	}

	return models.Page{Limit: limit, Offset: offset}, nil
}

// parseTokenPage assembles the token_id, limit and offset shared by the
// order book routes, where days is not accepted.
func parseTokenPage(raw models.RawQuery, route string) (string, models.Page, error) {
	tokenID, err := Parse(raw.TokenID, TokenIDPolicy)
	if err != nil {
		return "", models.Page{}, err
	}

	page, err := parsePage(raw)
	if err != nil {
		return "", models.Page{}, err
	}

	if _, err = Parse(raw.Days, ForbiddenDaysPolicy(route)); err != nil {
		return "", models.Page{}, err
	}

	return tokenID, page, nil
}
