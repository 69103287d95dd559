package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

// textArrayConverter lets []string arguments through, as the pgx driver
// encodes them as text[].
type textArrayConverter struct{}

func (textArrayConverter) ConvertValue(v any) (driver.Value, error) {
	if ids, ok := v.([]string); ok {
		return ids, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.ValueConverterOption(textArrayConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	return newDB(sqlx.NewDb(conn, "sqlmock"), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// ---- users ----

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	id := uuid.New()
	user := models.User{UserID: id, Username: "market-bot", PasswordHash: "$argon2id$hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(id, "market-bot", "$argon2id$hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
			AddRow(id.String(), "market-bot", "$argon2id$hash", fixedNow))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, id, created.UserID)
	assert.Equal(t, "market-bot", created.Username)
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestUserRepository_CreateUser_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "taken"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestUserRepository_CreateUser_UnexpectedError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "x"})
	assert.ErrorContains(t, err, "unexpected DB error")
}

func TestUserRepository_FindCredentialsByUsername(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, password_hash")).
		WithArgs("market-bot").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "password_hash"}).AddRow(id.String(), "$argon2id$stored"))

	creds, err := repo.FindCredentialsByUsername(context.Background(), "market-bot")
	require.NoError(t, err)
	assert.Equal(t, id, creds.UserID)
	assert.Equal(t, "$argon2id$stored", creds.PasswordHash.Expose())
}

func TestUserRepository_FindCredentialsByUsername_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, password_hash")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "password_hash"}))

	_, err := repo.FindCredentialsByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_FindCredentialsByUsername_RetriesTransientError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, password_hash")).
		WithArgs("market-bot").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, password_hash")).
		WithArgs("market-bot").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "password_hash"}).AddRow(id.String(), "h"))

	creds, err := repo.FindCredentialsByUsername(context.Background(), "market-bot")
	require.NoError(t, err)
	assert.Equal(t, id, creds.UserID)
}

func TestUserRepository_FindCredentialsByUsername_PermanentError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	// a single expectation: non-retryable errors are not repeated
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, password_hash")).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindCredentialsByUsername(context.Background(), "market-bot")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoUserWasFound)
	assert.ErrorContains(t, err, "unexpected DB error")
}

// ---- sales ----

func TestSaleRepository_ListSales(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSaleRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM sales WHERE token_id = $1 ORDER BY id LIMIT 3 OFFSET 0")).
		WithArgs("5").
		WillReturnRows(sqlmock.NewRows(saleColumns).
			AddRow(int64(1), "alice.near", "bob.near", "5", "1.5", fixedNow).
			AddRow(int64(2), "bob.near", "carol.near", "5", "2", fixedNow))

	sales, err := repo.ListSales(context.Background(), models.SaleFilter{Page: models.Page{Limit: 2}, TokenID: "5"})
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, int64(1), sales[0].ID)
	assert.True(t, decimal.RequireFromString("1.5").Equal(sales[0].Price))
	assert.Equal(t, "carol.near", sales[1].CurrOwner)
}

func TestSaleRepository_ListSales_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSaleRepository(db, logger.Nop())

	mock.ExpectQuery("FROM sales").WillReturnRows(sqlmock.NewRows(saleColumns))

	sales, err := repo.ListSales(context.Background(), models.SaleFilter{Page: models.Page{Limit: 10}})
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestSaleRepository_ListSales_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSaleRepository(db, logger.Nop())

	mock.ExpectQuery("FROM sales").WillReturnError(errors.New("boom"))

	_, err := repo.ListSales(context.Background(), models.SaleFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSaleRepository_ListSalesSince(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSaleRepository(db, logger.Nop())
	since := fixedNow.AddDate(0, 0, -1)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE date >= $1 ORDER BY date, id LIMIT 100 OFFSET 0")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows(saleColumns).AddRow(int64(3), "a.near", "b.near", "1", "4", fixedNow))

	sales, err := repo.ListSalesSince(context.Background(), since, models.Page{Limit: 100})
	require.NoError(t, err)
	require.Len(t, sales, 1)
}

func TestSaleRepository_InsertSale(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &saleRepository{db: db, logger: logger.Nop(), now: func() time.Time { return fixedNow }}

	sale := models.SaleForInsert{PrevOwner: "alice.near", CurrOwner: "bob.near", TokenID: "1", Price: decimal.RequireFromString("3.5")}
	mock.ExpectExec("INSERT INTO sales").
		WithArgs("alice.near", "bob.near", "1", "3.5", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.InsertSale(context.Background(), sale))
}

func TestSaleRepository_InsertSale_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSaleRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO sales").WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.InsertSale(context.Background(), models.SaleForInsert{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ---- nft tokens ----

func TestNftTokenRepository_ListNftTokens(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNftTokenRepository(db, logger.Nop())
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM nft_tokens WHERE owner_id = $1 ORDER BY db_created_at, id LIMIT 101 OFFSET 0")).
		WithArgs("alice.near").
		WillReturnRows(sqlmock.NewRows(nftTokenColumns).
			AddRow(id.String(), "alice.near", "1", "Lemon", nil, "ipfs://m", nil, nil, nil, nil, []byte(`{"kind":"lemon"}`), fixedNow))

	tokens, err := repo.ListNftTokens(context.Background(), models.NftTokenFilter{Page: models.Page{Limit: 100}, OwnerID: "alice.near"})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, id, tokens[0].ID)
	require.NotNil(t, tokens[0].Title)
	assert.Equal(t, "Lemon", *tokens[0].Title)
	assert.Nil(t, tokens[0].Description)
	assert.JSONEq(t, `{"kind":"lemon"}`, string(tokens[0].Model))
}

func TestNftTokenRepository_InsertNftToken(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNftTokenRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (token_id) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// a conflicting token is silently ignored
	err := repo.InsertNftToken(context.Background(), models.NftTokenForInsert{OwnerID: "alice.near", TokenID: "1", Media: "m"})
	require.NoError(t, err)
}

func TestNftTokenRepository_CountOwnedTokens(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNftTokenRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT token_id) FROM nft_tokens WHERE owner_id = $1 AND token_id = ANY($2)")).
		WithArgs("alice.near", []string{"1", "2"}).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountOwnedTokens(context.Background(), "alice.near", []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// ---- asks & bids ----

func TestAskRepository_ListAsks(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAskRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM asks ORDER BY id LIMIT 2 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows(askColumns).
			AddRow(int64(1), int64(0), "1", "alice.near", "10").
			AddRow(int64(2), int64(3), "2", "bob.near", "11"))

	asks, err := repo.ListAsks(context.Background(), models.AskFilter{Page: models.Page{Limit: 1}})
	require.NoError(t, err)
	assert.Len(t, asks, 2)
	assert.Equal(t, int64(3), asks[1].ApprovalID)
}

func TestAskRepository_InsertAndDelete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAskRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO asks").
		WithArgs(int64(1), "7", "alice.near", "5").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM asks WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM asks WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, repo.InsertAsk(ctx, models.AskForInsert{ApprovalID: 1, TokenID: "7", AccountID: "alice.near", Price: decimal.NewFromInt(5)}))
	require.NoError(t, repo.DeleteAsk(ctx, 1))
	assert.ErrorIs(t, repo.DeleteAsk(ctx, 1), ErrNothingDeleted)
}

func TestBidRepository_ListBids(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBidRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM bids WHERE token_id = $1 ORDER BY id LIMIT 11 OFFSET 5")).
		WithArgs("3").
		WillReturnRows(sqlmock.NewRows(bidColumns).
			AddRow(int64(9), "3", "bob.near", "1.25", fixedNow.Add(time.Hour), fixedNow))

	bids, err := repo.ListBids(context.Background(), models.BidFilter{Page: models.Page{Limit: 10, Offset: 5}, TokenID: "3"})
	require.NoError(t, err)
	require.Len(t, bids, 1)
	assert.Equal(t, fixedNow.Add(time.Hour), bids[0].ExpireAt)
}

func TestBidRepository_InsertAndDelete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &bidRepository{db: db, logger: logger.Nop(), now: func() time.Time { return fixedNow }}
	expire := fixedNow.Add(24 * time.Hour)

	mock.ExpectExec("INSERT INTO bids").
		WithArgs("3", "bob.near", "2", expire, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bids WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnError(errors.New("connection reset"))

	ctx := context.Background()
	require.NoError(t, repo.InsertBid(ctx, models.BidForInsert{TokenID: "3", AccountID: "bob.near", Price: decimal.NewFromInt(2), ExpireAt: expire}))

	err := repo.DeleteBid(ctx, 42)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrNothingDeleted)
}
