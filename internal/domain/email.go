package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

const emailMaxLength = 255

var emailPattern = regexp.MustCompile(
	"(?i)^[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$")

// Email is an optional address. A blank input is a valid absent value, not
// an error; a non-blank input must match the anchored pattern and fit in
// 255 characters. Casing is preserved.
type Email struct {
	value string
}

func (e Email) Value() string { return e.value }

func (e Email) IsZero() bool { return e.value == "" }

func NewEmail(raw string) result.Result[Email] {
	if strings.TrimSpace(raw) == "" {
		return result.Success(Email{})
	}
	if !emailPattern.MatchString(raw) {
		return result.BadRequest[Email](ErrInvalidEmail)
	}
	if utf8.RuneCountInString(raw) > emailMaxLength {
		return result.BadRequest[Email](ErrInvalidEmail)
	}
	return result.Success(Email{value: raw})
}
