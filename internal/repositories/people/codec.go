package people

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/dmitrijs2005/peoplekeeper/internal/models"
	"github.com/dmitrijs2005/peoplekeeper/internal/validator"
	"github.com/shopspring/decimal"
)

const (
	separator  = "|"
	fieldCount = 6
)

// ParseLine decodes one stored line. ok is false for malformed lines.
func ParseLine(line string) (p models.Person, ok bool) {
	parts := strings.Split(line, separator)
	if len(parts) != fieldCount {
		return models.Person{}, false
	}

	id, err := validator.ParsePositiveID(parts[0])
	if err != nil {
		return models.Person{}, false
	}
	balance, err := validator.ParseNonNegativeBalance(parts[5])
	if err != nil {
		return models.Person{}, false
	}

	return models.Person{
		ID:        id,
		FirstName: parts[1],
		LastName:  parts[2],
		Phone:     parts[3],
		City:      parts[4],
		Balance:   balance,
	}, true
}

// ValidField reports whether s fits in one stored field: it must not
// contain the field separator or a line break.
func ValidField(s string) bool {
	return !strings.ContainsAny(s, separator+"\r\n")
}

// FormatLine encodes p as a stored line. A text field that ValidField
// rejects yields common.ErrInvalidFormat, since it would not load back.
func FormatLine(p models.Person) (string, error) {
	for _, f := range []string{p.FirstName, p.LastName, p.Phone, p.City} {
		if !ValidField(f) {
			return "", fmt.Errorf("person %d: field %q: %w", p.ID, f, common.ErrInvalidFormat)
		}
	}
	return strings.Join([]string{
		strconv.Itoa(p.ID),
		p.FirstName,
		p.LastName,
		p.Phone,
		p.City,
		formatBalance(p.Balance),
	}, separator), nil
}

// formatBalance keeps the scale the value was entered with, so "50.50"
// is written back as "50.50" rather than "50.5".
func formatBalance(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.StringFixed(0)
}
