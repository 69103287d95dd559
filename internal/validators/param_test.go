// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func requireValidationError(t *testing.T, err error, field string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation), "expected ErrValidation, got %v", err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, field, vErr.Field)
	return vErr
}

// ---------------------------------------------------------------------------
// Numeric policies
// ---------------------------------------------------------------------------

func TestNumericPolicies_AbsentYieldsDefault(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy[int64]
		want   int64
	}{
		{name: "limit", policy: LimitPolicy, want: 100},
		{name: "offset", policy: OffsetPolicy, want: 0},
		{name: "paid days", policy: PaidDaysPolicy, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(nil, tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericPolicies_BelowMinimumIsRejected(t *testing.T) {
	for _, p := range []Policy[int64]{LimitPolicy, OffsetPolicy, PaidDaysPolicy} {
		for _, v := range []int64{-1, -2, -100, -9223372036854775808} {
			_, err := Parse(ptr(v), p)
			requireValidationError(t, err, p.Field)
		}
	}
}

func TestNumericPolicies_AtOrAboveMinimumIsAccepted(t *testing.T) {
	for _, p := range []Policy[int64]{LimitPolicy, OffsetPolicy, PaidDaysPolicy} {
		for _, v := range []int64{0, 1, 2, 100, 365} {
			got, err := Parse(ptr(v), p)
			require.NoError(t, err, "policy %s value %d", p.Field, v)
			assert.Equal(t, v, got)
		}
	}
}

func TestNumericPolicies_ZeroIsNotReplacedByDefault(t *testing.T) {
	got, err := Parse(ptr(int64(0)), LimitPolicy)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestPaidDaysPolicy_Maximum(t *testing.T) {
	_, err := Parse(ptr(MaxPaidDays), PaidDaysPolicy)
	require.NoError(t, err)

	_, err = Parse(ptr(MaxPaidDays+1), PaidDaysPolicy)
	requireValidationError(t, err, FieldDays)
}

func TestLimitPolicy_Message(t *testing.T) {
	_, err := Parse(ptr(int64(-5)), LimitPolicy)
	assert.EqualError(t, err, "the limit value must be non-negative")
}

func TestNonNegative_MessageComesFromRule(t *testing.T) {
	p := NonNegative(FieldOffset, 0)

	assert.False(t, p.Forbidden)
	assert.Empty(t, p.Message, "only forbidden policies report Message")
	require.Len(t, p.Rules, 1)
	assert.Equal(t, "the offset value must be non-negative", p.Rules[0](-1))
	assert.Empty(t, p.Rules[0](0))
}

// ---------------------------------------------------------------------------
// Forbidden policy
// ---------------------------------------------------------------------------

func TestForbiddenDaysPolicy(t *testing.T) {
	p := ForbiddenDaysPolicy(RouteSales)

	got, err := Parse(nil, p)
	require.NoError(t, err)
	assert.Zero(t, got)

	for _, v := range []int64{-1, 0, 1, 30} {
		_, err = Parse(ptr(v), p)
		vErr := requireValidationError(t, err, FieldDays)
		assert.Equal(t, "query `days` is prohibited for the `sales` route", vErr.Message)
	}
}

// ---------------------------------------------------------------------------
// TokenID
// ---------------------------------------------------------------------------

func TestTokenIDPolicy(t *testing.T) {
	valid := map[string]string{
		"123":    "123",
		"0":      "0",
		" 42 ":   "42",
		"\t007\n": "007",
	}
	for raw, want := range valid {
		got, err := Parse(ptr(raw), TokenIDPolicy)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "   ", "12a", "a", "1a", "12.", "+12", "-12", "1+2", "1 2"} {
		_, err := Parse(ptr(raw), TokenIDPolicy)
		requireValidationError(t, err, FieldTokenID)
	}

	got, err := Parse(nil, TokenIDPolicy)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokenIDPolicy_Messages(t *testing.T) {
	_, err := Parse(ptr(" "), TokenIDPolicy)
	assert.EqualError(t, err, "token id is empty")

	_, err = Parse(ptr("12a"), TokenIDPolicy)
	assert.EqualError(t, err, "the token id must contain only digits")
}

// ---------------------------------------------------------------------------
// OwnerID
// ---------------------------------------------------------------------------

func TestOwnerIDPolicy_Valid(t *testing.T) {
	for _, raw := range []string{
		"alice.near",
		"fomo.testnet",
		"dev-1603749005325-6432576",
		"ab",
		"a_b.c-d.near",
		strings.Repeat("a", 64),
	} {
		got, err := Parse(ptr(raw), OwnerIDPolicy)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, raw, got)
	}
}

func TestOwnerIDPolicy_Trims(t *testing.T) {
	got, err := Parse(ptr("  alice.near "), OwnerIDPolicy)
	require.NoError(t, err)
	assert.Equal(t, "alice.near", got)
}

func TestOwnerIDPolicy_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{name: "empty", raw: "", message: "owner id is empty"},
		{name: "whitespace", raw: "   ", message: "owner id is empty"},
		{name: "too short", raw: "a", message: `owner id "a" is too short (min 2)`},
		{name: "too long", raw: strings.Repeat("a", 65)},
		{name: "semicolon", raw: "alice;", message: `owner id "alice;" contains wrong chars`},
		{name: "at sign", raw: "fomo@.testnet"},
		{name: "slash", raw: "dev-1603749005325-6/432576"},
		{name: "upper case", raw: "Alice.near"},
		{name: "leading dot", raw: ".alice"},
		{name: "trailing separator", raw: "alice-"},
		{name: "double dot", raw: "alice..near"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(ptr(tt.raw), OwnerIDPolicy)
			vErr := requireValidationError(t, err, FieldOwnerID)
			if tt.message != "" {
				assert.Equal(t, tt.message, vErr.Message)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

func TestParse_StopsAtFirstRule(t *testing.T) {
	calls := 0
	p := Policy[string]{
		Field: "x",
		Rules: []Rule[string]{
			func(string) string { calls++; return "first" },
			func(string) string { calls++; return "second" },
		},
	}

	_, err := Parse(ptr("v"), p)
	assert.EqualError(t, err, "first")
	assert.Equal(t, 1, calls)
}

func TestRequired_ZeroValueGoesThroughRules(t *testing.T) {
	_, err := Required("", TokenIDPolicy)
	requireValidationError(t, err, FieldTokenID)
}

func TestTokenIDCount(t *testing.T) {
	assert.NoError(t, TokenIDCount(nil))
	assert.NoError(t, TokenIDCount(make([]string, MaxOwnedTokenIDs)))

	err := TokenIDCount(make([]string, MaxOwnedTokenIDs+1))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, FieldTokenID, vErr.Field)
	assert.Equal(t, "at most 1000 token ids may be checked at once", vErr.Message)
}
