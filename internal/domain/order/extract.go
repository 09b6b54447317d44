package order

import (
	"fmt"
	"strconv"
	"strings"

	"luna-storefront/internal/domain/money"
)

// Field extraction for schema-versioned payloads: each canonical field is
// read through an ordered key list applied first-match-wins, so precedence
// between legacy key names is declarative instead of inline || chains.

// pick returns the first present, non-nil value among names.
func pick(raw map[string]any, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := raw[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// pickString is pick narrowed to a non-blank string rendering.
func pickString(raw map[string]any, fallback string, names ...string) string {
	for _, name := range names {
		if v, ok := raw[name]; ok && v != nil {
			if s := asString(v); strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return fallback
}

// pickMoney reads the first parseable amount among names, 0 otherwise.
func pickMoney(raw map[string]any, names ...string) money.Money {
	for _, name := range names {
		if v, ok := raw[name]; ok && v != nil {
			if m, ok := asMoney(v); ok {
				return m
			}
		}
	}
	return 0
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asMoney(v any) (money.Money, bool) {
	switch n := v.(type) {
	case float64:
		return money.FromFloat(n), true
	case string:
		m, err := money.Parse(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return m, true
	default:
		return 0, false
	}
}

func asInt(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return fallback
}
