// Package validator turns raw operator input into typed values.
//
// All functions are pure: they have no side effects and keep no state.
// Parse functions return common.ErrInvalidFormat (wrapped) on failure so
// callers can re-prompt or reject a single field.
package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/shopspring/decimal"
)

// MinPhoneLength is the shortest accepted phone, counting punctuation and spaces.
const MinPhoneLength = 7

// ParsePositiveID parses text as an integer id that must be greater than zero.
func ParsePositiveID(text string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("id %q: %w", text, common.ErrInvalidFormat)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id %d must be positive: %w", id, common.ErrInvalidFormat)
	}
	return id, nil
}

// NonEmpty reports whether text has any non-whitespace content.
func NonEmpty(text string) bool {
	return strings.TrimSpace(text) != ""
}

// ValidPhone reports whether text is at least MinPhoneLength characters long
// after trimming and contains at least one decimal digit. No other
// normalization is applied.
//
// Length is counted in runes and only ASCII '0'-'9' count as digits;
// other Unicode decimal digits do not satisfy the digit rule.
func ValidPhone(text string) bool {
	t := strings.TrimSpace(text)
	if len([]rune(t)) < MinPhoneLength {
		return false
	}
	return strings.ContainsFunc(t, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}

// ParseNonNegativeBalance parses text as an exact decimal that must be >= 0.
func ParseNonNegativeBalance(text string) (decimal.Decimal, error) {
	t := strings.TrimSpace(text)
	if t == "" || strings.ContainsFunc(t, unicode.IsSpace) {
		return decimal.Zero, fmt.Errorf("balance %q: %w", text, common.ErrInvalidFormat)
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance %q: %w", text, common.ErrInvalidFormat)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("balance %s must not be negative: %w", d, common.ErrInvalidFormat)
	}
	return d, nil
}
