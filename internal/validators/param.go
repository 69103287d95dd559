package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Rule checks a present, normalized value. It returns the message to report
// to the client, or an empty string when the value is acceptable.
type Rule[T any] func(value T) string

// Policy describes how an optional raw value becomes a domain value.
//
// An absent value yields Default. A present value is rejected with Message
// when the policy is Forbidden; otherwise it is passed through Normalize and
// then through Rules in order, stopping at the first violation.
type Policy[T any] struct {
	Field     string
	Default   T
	Forbidden bool
	// Message is reported for a Forbidden value only. Rules carry their own.
	Message   string
	Normalize func(T) T
	Rules     []Rule[T]
}

// Parse applies p to raw. A nil raw means the value was not supplied.
func Parse[T any](raw *T, p Policy[T]) (T, error) {
	var zero T

	if raw == nil {
		return p.Default, nil
	}

	if p.Forbidden {
		return zero, &ValidationError{Field: p.Field, Message: p.Message}
	}

	value := *raw
	if p.Normalize != nil {
		value = p.Normalize(value)
	}

	for _, rule := range p.Rules {
		if msg := rule(value); msg != "" {
			return zero, &ValidationError{Field: p.Field, Message: msg}
		}
	}

	return value, nil
}

// Required applies p to a value that must be present, such as a field of a
// request body. The zero value is passed through the rules, not replaced by
// the default.
func Required[T any](value T, p Policy[T]) (T, error) {
	return Parse(&value, p)
}

// NonNegative returns the policy of an integer query parameter that defaults
// to def and rejects negative values.
func NonNegative(field string, def int64) Policy[int64] {
	return Policy[int64]{
		Field:   field,
		Default: def,
		Rules:   []Rule[int64]{Min(0, fmt.Sprintf("the %s value must be non-negative", field))},
	}
}

// Forbidden returns a policy that rejects any value supplied for field on route.
func Forbidden[T any](field, route string) Policy[T] {
	return Policy[T]{
		Field:     field,
		Forbidden: true,
		Message:   fmt.Sprintf("query `%s` is prohibited for the `%s` route", field, route),
	}
}

func Min(bound int64, message string) Rule[int64] {
	return func(value int64) string {
		if value < bound {
			return message
		}
		return ""
	}
}

func Max(bound int64, message string) Rule[int64] {
	return func(value int64) string {
		if value > bound {
			return message
		}
		return ""
	}
}

// NotEmpty rejects the empty string. Combined with a trimming Normalize it
// also rejects all-whitespace input.
func NotEmpty(name string) Rule[string] {
	return func(value string) string {
		if value == "" {
			return name + " is empty"
		}
		return ""
	}
}

// Length bounds the number of characters of value.
func Length(name string, shortest, longest int) Rule[string] {
	return func(value string) string {
		n := utf8.RuneCountInString(value)
		switch {
		case n < shortest:
			return fmt.Sprintf("%s %q is too short (min %d)", name, value, shortest)
		case n > longest:
			return fmt.Sprintf("%s %q is too long (max %d)", name, value, longest)
		}
		return ""
	}
}

// Digits accepts only ASCII digits.
func Digits(message string) Rule[string] {
	return func(value string) string {
		for i := 0; i < len(value); i++ {
			if value[i] < '0' || value[i] > '9' {
				return message
			}
		}
		return ""
	}
}

// Matches accepts values matching re. format receives the value as its only
// argument.
func Matches(re *regexp.Regexp, format string) Rule[string] {
	return func(value string) string {
		if !re.MatchString(value) {
			return fmt.Sprintf(format, value)
		}
		return ""
	}
}

func NonNegativeDecimal(message string) Rule[decimal.Decimal] {
	return func(value decimal.Decimal) string {
		if value.IsNegative() {
			return message
		}
		return ""
	}
}
