package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

const nameMaxLength = 100

// Name is a required display name, 1 to 100 characters. The value is stored
// exactly as provided; only the emptiness check ignores surrounding
// whitespace.
type Name struct {
	value string
}

func (n Name) Value() string { return n.value }

func NewName(raw string) result.Result[Name] {
	if strings.TrimSpace(raw) == "" {
		return result.BadRequest[Name](ErrNameRequired)
	}
	if utf8.RuneCountInString(raw) > nameMaxLength {
		return result.BadRequest[Name](ErrNameTooLong)
	}
	return result.Success(Name{value: raw})
}
