package validators

import (
	"fmt"
	"regexp"
	"strings"
)

// Query parameter names.
const (
	FieldLimit   = "limit"
	FieldOffset  = "offset"
	FieldDays    = "days"
	FieldTokenID = "token_id"
	FieldOwnerID = "owner_id"
)

// Routes whose filters are assembled in this package.
const (
	RouteSales     = "sales"
	RoutePaid      = "paid"
	RouteNftTokens = "nft_tokens"
	RouteAsks      = "asks"
	RouteBids      = "bids"
)

const (
	DefaultLimit    int64 = 100
	DefaultOffset   int64 = 0
	DefaultPaidDays int64 = 1

	// MaxPaidDays keeps now() - days within the range of a timestamp.
	MaxPaidDays int64 = 36500

	MinOwnerIDLength = 2
	MaxOwnerIDLength = 64

	// MaxOwnedTokenIDs bounds one is_owner request, duplicates included.
	MaxOwnedTokenIDs = 1000
)

// TokenIDCount rejects a token id list longer than MaxOwnedTokenIDs.
func TokenIDCount(ids []string) error {
	if len(ids) > MaxOwnedTokenIDs {
		return &ValidationError{
			Field:   FieldTokenID,
			Message: fmt.Sprintf("at most %d token ids may be checked at once", MaxOwnedTokenIDs),
		}
	}
	return nil
}

// ownerIDPattern matches NEAR account ids: lowercase alphanumeric parts
// joined by '-' or '_' inside a segment, segments separated by '.'.
var ownerIDPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

var (
	LimitPolicy  = NonNegative(FieldLimit, DefaultLimit)
	OffsetPolicy = NonNegative(FieldOffset, DefaultOffset)

	PaidDaysPolicy = Policy[int64]{
		Field:   FieldDays,
		Default: DefaultPaidDays,
		Rules: []Rule[int64]{
			Min(0, "the days value must be non-negative"),
			Max(MaxPaidDays, "the days value is too big"),
		},
	}

	TokenIDPolicy = Policy[string]{
		Field:     FieldTokenID,
		Normalize: strings.TrimSpace,
		Rules: []Rule[string]{
			NotEmpty("token id"),
			Digits("the token id must contain only digits"),
		},
	}

	OwnerIDPolicy = Policy[string]{
		Field:     FieldOwnerID,
		Normalize: strings.TrimSpace,
		Rules: []Rule[string]{
			NotEmpty("owner id"),
			Length("owner id", MinOwnerIDLength, MaxOwnerIDLength),
			Matches(ownerIDPattern, "owner id %q contains wrong chars"),
		},
	}
)

// ForbiddenDaysPolicy rejects the days parameter on route.
func ForbiddenDaysPolicy(route string) Policy[int64] {
	return Forbidden[int64](FieldDays, route)
}
