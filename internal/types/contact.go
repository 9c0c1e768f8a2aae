package types

import (
	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

// Contact is a person that can be assigned to funds. Email and PhoneNumber
// are optional; empty string means absent. The columns hold the validated
// value-object values flattened to plain strings.
type Contact struct {
	Base
	Name        string `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Email       string `gorm:"type:varchar(255);column:email" json:"email,omitempty"`
	PhoneNumber string `gorm:"type:varchar(50);column:phone_number" json:"phoneNumber,omitempty"`
}

func (Contact) TableName() string {
	return "contacts"
}

// NewContact validates name, email and phone in that order, returning the
// first failure. On success the contact gets a fresh id and timestamps.
func NewContact(name, email, phoneNumber string) result.Result[*Contact] {
	nameRes := domain.NewName(name)
	if nameRes.IsFailure() {
		return result.From[*Contact](nameRes)
	}
	emailRes := domain.NewEmail(email)
	if emailRes.IsFailure() {
		return result.From[*Contact](emailRes)
	}
	phoneRes := domain.NewPhoneNumber(phoneNumber)
	if phoneRes.IsFailure() {
		return result.From[*Contact](phoneRes)
	}

	contact := &Contact{
		Base:        NewBase(),
		Name:        nameRes.Value().Value(),
		Email:       emailRes.Value().Value(),
		PhoneNumber: phoneRes.Value().Value(),
	}
	return result.Success(contact)
}

// Update replaces name, email and phone after running the same validation
// as NewContact. Full-replace semantics: an absent email or phone clears
// the stored one. Identity and CreatedAt are untouched.
func (c *Contact) Update(name, email, phoneNumber string) result.Result[*Contact] {
	nameRes := domain.NewName(name)
	if nameRes.IsFailure() {
		return result.From[*Contact](nameRes)
	}
	emailRes := domain.NewEmail(email)
	if emailRes.IsFailure() {
		return result.From[*Contact](emailRes)
	}
	phoneRes := domain.NewPhoneNumber(phoneNumber)
	if phoneRes.IsFailure() {
		return result.From[*Contact](phoneRes)
	}

	c.Name = nameRes.Value().Value()
	c.Email = emailRes.Value().Value()
	c.PhoneNumber = phoneRes.Value().Value()
	return result.Success(c)
}

// CanDelete enforces the invariant that a contact with active fund
// assignments cannot be hard-deleted.
func (c *Contact) CanDelete(hasFundAssignments bool) result.Result[bool] {
	if hasFundAssignments {
		return result.Conflict[bool](domain.ErrContactCannotDelete)
	}
	return result.Success(true)
}
