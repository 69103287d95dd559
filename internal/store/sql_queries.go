package store

import (
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-nft-market/models"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (user_id, username, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, created_at;`

	findCredentialsByUsername = `SELECT user_id, password_hash
    FROM users
    WHERE username = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	saleColumns = []string{"id", "prev_owner", "curr_owner", "token_id", "price", "date"}

	nftTokenColumns = []string{
		"id", "owner_id", "token_id", "title", "description", "media", "media_hash",
		"copies", "issued_at", "expires_at", "model", "db_created_at",
	}

	askColumns = []string{"id", "approval_id", "token_id", "account_id", "price"}

	bidColumns = []string{"id", "token_id", "account_id", "price", "expire_at", "create_at"}
)

// fetchLimit is the row count a list query asks for: one more than the page
// so the caller can tell whether rows remain.
func fetchLimit(limit int64) uint64 {
	if limit < 0 {
		limit = 0
	}
	if limit == math.MaxInt64 {
		return math.MaxInt64
	}

	return uint64(limit) + 1
}

// paginate is the only place list queries get their LIMIT and OFFSET. The
// builder must already carry a stable ORDER BY.
func paginate(b sq.SelectBuilder, page models.Page) sq.SelectBuilder {
	return b.Limit(fetchLimit(page.Limit)).Offset(uint64(max(page.Offset, 0)))
}

func buildSelectSalesQuery(filter models.SaleFilter) (string, []any, error) {
	b := psql.Select(saleColumns...).From("sales")
	if filter.TokenID != "" {
		b = b.Where(sq.Eq{"token_id": filter.TokenID})
	}

	return paginate(b.OrderBy("id"), filter.Page).ToSql()
}

// buildSelectSalesSinceQuery reads a window of sales for the paid report.
// It returns exactly the page, not page+1.
func buildSelectSalesSinceQuery(since time.Time, page models.Page) (string, []any, error) {
	return psql.Select(saleColumns...).
		From("sales").
		Where(sq.GtOrEq{"date": since}).
		OrderBy("date", "id").
		Limit(uint64(max(page.Limit, 0))).
		Offset(uint64(max(page.Offset, 0))).
		ToSql()
}

func buildInsertSaleQuery(sale models.SaleForInsert, date time.Time) (string, []any, error) {
	return psql.Insert("sales").
		Columns("prev_owner", "curr_owner", "token_id", "price", "date").
		Values(sale.PrevOwner, sale.CurrOwner, sale.TokenID, sale.Price, date).
		ToSql()
}

func buildSelectNftTokensQuery(filter models.NftTokenFilter) (string, []any, error) {
	b := psql.Select(nftTokenColumns...).From("nft_tokens")
	if filter.TokenID != "" {
		b = b.Where(sq.Eq{"token_id": filter.TokenID})
	}
	if filter.OwnerID != "" {
		b = b.Where(sq.Eq{"owner_id": filter.OwnerID})
	}

	return paginate(b.OrderBy("db_created_at", "id"), filter.Page).ToSql()
}

func buildInsertNftTokenQuery(id uuid.UUID, token models.NftTokenForInsert, createdAt time.Time) (string, []any, error) {
	return psql.Insert("nft_tokens").
		Columns(nftTokenColumns...).
		Values(
			id,
			token.OwnerID,
			token.TokenID,
			token.Title,
			token.Description,
			token.Media,
			token.MediaHash,
			token.Copies,
			token.IssuedAt,
			token.ExpiresAt,
			token.Model,
			createdAt,
		).
		Suffix("ON CONFLICT (token_id) DO NOTHING").
		ToSql()
}

// buildCountOwnedTokensQuery binds tokenIDs as one text[] parameter, so the
// number of bind parameters does not grow with the list.
func buildCountOwnedTokensQuery(ownerID string, tokenIDs []string) (string, []any, error) {
	return psql.Select("COUNT(DISTINCT token_id)").
		From("nft_tokens").
		Where(sq.Eq{"owner_id": ownerID}).
		Where("token_id = ANY(?)", tokenIDs).
		ToSql()
}

func buildSelectAsksQuery(filter models.AskFilter) (string, []any, error) {
	b := psql.Select(askColumns...).From("asks")
	if filter.TokenID != "" {
		b = b.Where(sq.Eq{"token_id": filter.TokenID})
	}

	return paginate(b.OrderBy("id"), filter.Page).ToSql()
}

func buildInsertAskQuery(ask models.AskForInsert) (string, []any, error) {
	return psql.Insert("asks").
		Columns("approval_id", "token_id", "account_id", "price").
		Values(ask.ApprovalID, ask.TokenID, ask.AccountID, ask.Price).
		Suffix("ON CONFLICT (token_id) DO NOTHING").
		ToSql()
}

func buildSelectBidsQuery(filter models.BidFilter) (string, []any, error) {
	b := psql.Select(bidColumns...).From("bids")
	if filter.TokenID != "" {
		b = b.Where(sq.Eq{"token_id": filter.TokenID})
	}

	return paginate(b.OrderBy("id"), filter.Page).ToSql()
}

func buildInsertBidQuery(bid models.BidForInsert, createAt time.Time) (string, []any, error) {
	return psql.Insert("bids").
		Columns("token_id", "account_id", "price", "expire_at", "create_at").
		Values(bid.TokenID, bid.AccountID, bid.Price, bid.ExpireAt, createAt).
		Suffix("ON CONFLICT (token_id) DO NOTHING").
		ToSql()
}

func buildDeleteByIDQuery(table string, id int64) (string, []any, error) {
	return psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}
