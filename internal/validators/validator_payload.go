package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-nft-market/models"
	"github.com/shopspring/decimal"
)

// Body field names used to scope [PayloadValidator.Validate].
const (
	FieldPrevOwner  = "prev_owner"
	FieldCurrOwner  = "curr_owner"
	FieldAccountID  = "account_id"
	FieldPrice      = "price"
	FieldMedia      = "media"
	FieldApprovalID = "approval_id"
	FieldExpireAt   = "expire_at"
	FieldID         = "id"
)

var (
	pricePolicy = Policy[decimal.Decimal]{
		Field: FieldPrice,
		Rules: []Rule[decimal.Decimal]{NonNegativeDecimal("the price must be non-negative")},
	}

	mediaPolicy = Policy[string]{
		Field:     FieldMedia,
		Normalize: strings.TrimSpace,
		Rules:     []Rule[string]{NotEmpty("media")},
	}

	approvalIDPolicy = Policy[int64]{
		Field: FieldApprovalID,
		Rules: []Rule[int64]{Min(0, "the approval id must be non-negative")},
	}

	recordIDPolicy = Policy[int64]{
		Field: FieldID,
		Rules: []Rule[int64]{Min(1, "the id must be positive")},
	}
)

// accountPolicy is the owner id policy reported under another body field.
func accountPolicy(field string) Policy[string] {
	p := OwnerIDPolicy
	p.Field = field
	return p
}

// PayloadValidator validates the bodies of the write routes:
// [models.SaleForInsert], [models.NftTokenForInsert], [models.AskForInsert],
// [models.BidForInsert] and [models.DeleteRequest]. Values and pointers are
// both accepted; through a pointer the trimmed identifiers are written back.
// Passing field names restricts validation to those fields.
type PayloadValidator struct{}

func NewPayloadValidator() Validator {
	return &PayloadValidator{}
}

func (v *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaleForInsert:
		return v.validateSale(&value, fields...)
	case *models.SaleForInsert:
		return v.validateSale(value, fields...)

	case models.NftTokenForInsert:
		return v.validateNftToken(&value, fields...)
	case *models.NftTokenForInsert:
		return v.validateNftToken(value, fields...)

	case models.AskForInsert:
		return v.validateAsk(&value, fields...)
	case *models.AskForInsert:
		return v.validateAsk(value, fields...)

	case models.BidForInsert:
		return v.validateBid(&value, fields...)
	case *models.BidForInsert:
		return v.validateBid(value, fields...)

	case models.DeleteRequest:
		return v.validateDelete(&value, fields...)
	case *models.DeleteRequest:
		return v.validateDelete(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PayloadValidator) validateSale(sale *models.SaleForInsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTokenID, FieldPrevOwner, FieldCurrOwner, FieldPrice}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTokenID:
			sale.TokenID, err = Required(sale.TokenID, TokenIDPolicy)
		case FieldPrevOwner:
			sale.PrevOwner, err = Required(sale.PrevOwner, accountPolicy(FieldPrevOwner))
		case FieldCurrOwner:
			sale.CurrOwner, err = Required(sale.CurrOwner, accountPolicy(FieldCurrOwner))
		case FieldPrice:
			_, err = Required(sale.Price, pricePolicy)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PayloadValidator) validateNftToken(token *models.NftTokenForInsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTokenID, FieldOwnerID, FieldMedia}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTokenID:
			token.TokenID, err = Required(token.TokenID, TokenIDPolicy)
		case FieldOwnerID:
			token.OwnerID, err = Required(token.OwnerID, OwnerIDPolicy)
		case FieldMedia:
			token.Media, err = Required(token.Media, mediaPolicy)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PayloadValidator) validateAsk(ask *models.AskForInsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTokenID, FieldAccountID, FieldApprovalID, FieldPrice}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTokenID:
			ask.TokenID, err = Required(ask.TokenID, TokenIDPolicy)
		case FieldAccountID:
			ask.AccountID, err = Required(ask.AccountID, accountPolicy(FieldAccountID))
		case FieldApprovalID:
			_, err = Required(ask.ApprovalID, approvalIDPolicy)
		case FieldPrice:
			_, err = Required(ask.Price, pricePolicy)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PayloadValidator) validateBid(bid *models.BidForInsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTokenID, FieldAccountID, FieldPrice, FieldExpireAt}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTokenID:
			bid.TokenID, err = Required(bid.TokenID, TokenIDPolicy)
		case FieldAccountID:
			bid.AccountID, err = Required(bid.AccountID, accountPolicy(FieldAccountID))
		case FieldPrice:
			_, err = Required(bid.Price, pricePolicy)
		case FieldExpireAt:
			if bid.ExpireAt.IsZero() {
				err = &ValidationError{Field: FieldExpireAt, Message: "expire_at is required"}
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PayloadValidator) validateDelete(request *models.DeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if _, err := Required(request.ID, recordIDPolicy); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
