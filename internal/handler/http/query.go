package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-nft-market/internal/validators"
	"github.com/MKhiriev/go-nft-market/models"
)

// rawQueryFromRequest extracts the known list parameters of r without
// validating their values. Each known parameter may appear at most once and
// integer parameters must parse as int64. Unknown parameters are ignored.
func rawQueryFromRequest(r *http.Request) (models.RawQuery, error) {
	values := r.URL.Query()

	var (
		raw models.RawQuery
		err error
	)

	if raw.Limit, err = intParam(values, validators.FieldLimit); err != nil {
		return models.RawQuery{}, err
	}
	if raw.Offset, err = intParam(values, validators.FieldOffset); err != nil {
		return models.RawQuery{}, err
	}
	if raw.Days, err = intParam(values, validators.FieldDays); err != nil {
		return models.RawQuery{}, err
	}
	if raw.TokenID, err = stringParam(values, validators.FieldTokenID); err != nil {
		return models.RawQuery{}, err
	}
	if raw.OwnerID, err = stringParam(values, validators.FieldOwnerID); err != nil {
		return models.RawQuery{}, err
	}

	return raw, nil
}

func stringParam(values url.Values, name string) (*string, error) {
	v, ok := values[name]
	switch {
	case !ok:
		return nil, nil
	case len(v) > 1:
		return nil, &validators.ValidationError{
			Field:   name,
			Message: fmt.Sprintf("query parameter `%s` must not be repeated", name),
		}
	}

	return &v[0], nil
}

func intParam(values url.Values, name string) (*int64, error) {
	s, err := stringParam(values, name)
	if s == nil || err != nil {
		return nil, err
	}

	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil, &validators.ValidationError{
			Field:   name,
			Message: fmt.Sprintf("query parameter `%s` must be an integer", name),
		}
	}

	return &n, nil
}
