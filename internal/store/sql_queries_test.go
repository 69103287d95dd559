// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-nft-market/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_fetchLimit(t *testing.T) {
	tests := []struct {
		limit int64
		want  uint64
	}{
		{limit: 0, want: 1},
		{limit: 1, want: 2},
		{limit: 100, want: 101},
		{limit: -5, want: 1},
		{limit: math.MaxInt64, want: math.MaxInt64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fetchLimit(tt.limit), "limit %d", tt.limit)
	}
}

func Test_buildSelectSalesQuery(t *testing.T) {
	query, args, err := buildSelectSalesQuery(models.SaleFilter{Page: models.Page{Limit: 100}})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, prev_owner, curr_owner, token_id, price, date FROM sales ORDER BY id LIMIT 101 OFFSET 0", query)
	assert.Empty(t, args)

	query, args, err = buildSelectSalesQuery(models.SaleFilter{Page: models.Page{Limit: 5, Offset: 10}, TokenID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, prev_owner, curr_owner, token_id, price, date FROM sales WHERE token_id = $1 ORDER BY id LIMIT 6 OFFSET 10", query)
	assert.Equal(t, []any{"42"}, args)
}

func Test_buildSelectSalesSinceQuery(t *testing.T) {
	since := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := buildSelectSalesSinceQuery(since, models.Page{Limit: 100, Offset: 3})
	require.NoError(t, err)

	// the paid report reads exactly one page
	assert.Equal(t, "SELECT id, prev_owner, curr_owner, token_id, price, date FROM sales WHERE date >= $1 ORDER BY date, id LIMIT 100 OFFSET 3", query)
	assert.Equal(t, []any{since}, args)
}

func Test_buildInsertSaleQuery(t *testing.T) {
	now := time.Now()
	sale := models.SaleForInsert{PrevOwner: "alice.near", CurrOwner: "bob.near", TokenID: "1", Price: decimal.RequireFromString("2.5")}

	query, args, err := buildInsertSaleQuery(sale, now)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO sales (prev_owner,curr_owner,token_id,price,date) VALUES ($1,$2,$3,$4,$5)", query)
	require.Len(t, args, 5)
	assert.Equal(t, "alice.near", args[0])
	assert.Equal(t, now, args[4])
}

func Test_buildSelectNftTokensQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.NftTokenFilter
		wantWhere string
		wantArgs  []any
	}{
		{name: "no filters", filter: models.NftTokenFilter{Page: models.Page{Limit: 10}}, wantWhere: "", wantArgs: nil},
		{name: "token only", filter: models.NftTokenFilter{Page: models.Page{Limit: 10}, TokenID: "7"}, wantWhere: " WHERE token_id = $1", wantArgs: []any{"7"}},
		{
			name:      "token and owner",
			filter:    models.NftTokenFilter{Page: models.Page{Limit: 10}, TokenID: "7", OwnerID: "alice.near"},
			wantWhere: " WHERE token_id = $1 AND owner_id = $2",
			wantArgs:  []any{"7", "alice.near"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectNftTokensQuery(tt.filter)
			require.NoError(t, err)

			want := "SELECT " + strings.Join(nftTokenColumns, ", ") + " FROM nft_tokens" + tt.wantWhere + " ORDER BY db_created_at, id LIMIT 11 OFFSET 0"
			assert.Equal(t, want, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildInsertNftTokenQuery(t *testing.T) {
	id := uuid.New()
	token := models.NftTokenForInsert{OwnerID: "alice.near", TokenID: "1", Media: "ipfs://x", Model: models.JSONDocument(`{}`)}

	query, args, err := buildInsertNftTokenQuery(id, token, time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO nft_tokens ("))
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (token_id) DO NOTHING"))
	assert.Contains(t, query, "$12")
	require.Len(t, args, 12)
	assert.Equal(t, id, args[0])
}

func Test_buildCountOwnedTokensQuery(t *testing.T) {
	query, args, err := buildCountOwnedTokensQuery("alice.near", []string{"1", "2", "3"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(DISTINCT token_id) FROM nft_tokens WHERE owner_id = $1 AND token_id = ANY($2)", query)
	assert.Equal(t, []any{"alice.near", []string{"1", "2", "3"}}, args)
}

func Test_buildCountOwnedTokensQuery_LargeListIsOneParameter(t *testing.T) {
	tokenIDs := make([]string, 70000)
	for i := range tokenIDs {
		tokenIDs[i] = strconv.Itoa(i)
	}

	query, args, err := buildCountOwnedTokensQuery("alice.near", tokenIDs)
	require.NoError(t, err)

	assert.Len(t, args, 2)
	assert.NotContains(t, query, "$3")
	assert.Len(t, args[1], len(tokenIDs))
}

func Test_buildMarketOrderQueries(t *testing.T) {
	query, args, err := buildSelectAsksQuery(models.AskFilter{Page: models.Page{Limit: 0, Offset: 1}, TokenID: "9"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, approval_id, token_id, account_id, price FROM asks WHERE token_id = $1 ORDER BY id LIMIT 1 OFFSET 1", query)
	assert.Equal(t, []any{"9"}, args)

	query, _, err = buildSelectBidsQuery(models.BidFilter{Page: models.Page{Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, token_id, account_id, price, expire_at, create_at FROM bids ORDER BY id LIMIT 3 OFFSET 0", query)

	query, _, err = buildInsertAskQuery(models.AskForInsert{TokenID: "9"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO asks (approval_id,token_id,account_id,price) VALUES ($1,$2,$3,$4) ON CONFLICT (token_id) DO NOTHING", query)

	query, _, err = buildInsertBidQuery(models.BidForInsert{TokenID: "9"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bids (token_id,account_id,price,expire_at,create_at) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (token_id) DO NOTHING", query)

	query, args, err = buildDeleteByIDQuery("bids", 4)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bids WHERE id = $1", query)
	assert.Equal(t, []any{int64(4)}, args)
}
