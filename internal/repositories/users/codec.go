package users

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/peoplekeeper/internal/models"
)

const (
	separator  = ","
	fieldCount = 3
)

// ParseLine decodes one stored line. ok is false for malformed lines.
func ParseLine(line string) (u models.User, ok bool) {
	parts := strings.Split(line, separator)
	if len(parts) != fieldCount {
		return models.User{}, false
	}

	var active bool
	switch strings.ToLower(strings.TrimSpace(parts[2])) {
	case "true":
		active = true
	case "false":
	default:
		return models.User{}, false
	}

	return models.User{Username: parts[0], Password: parts[1], Active: active}, true
}

// FormatLine encodes u as a stored line.
func FormatLine(u models.User) string {
	return strings.Join([]string{u.Username, u.Password, strconv.FormatBool(u.Active)}, separator)
}
