package domain

import (
	"regexp"
	"strings"

	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

var phoneDigitsPattern = regexp.MustCompile(`^\d{10,15}$`)

// PhoneNumber is an optional number. Validation strips every non-digit
// character and requires 10 to 15 digits, but the stored value keeps the
// original formatting (spaces, dashes, parentheses).
type PhoneNumber struct {
	value string
}

func (p PhoneNumber) Value() string { return p.value }

func (p PhoneNumber) IsZero() bool { return p.value == "" }

func NewPhoneNumber(raw string) result.Result[PhoneNumber] {
	if strings.TrimSpace(raw) == "" {
		return result.Success(PhoneNumber{})
	}

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if !phoneDigitsPattern.MatchString(digits.String()) {
		return result.BadRequest[PhoneNumber](ErrInvalidPhoneNumber)
	}
	return result.Success(PhoneNumber{value: raw})
}
