package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

type ContactDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FundDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FundContactDTO is the assignment echo: the association's own id and
// timestamps plus both display names.
type FundContactDTO struct {
	ID          uuid.UUID `json:"id"`
	ContactID   uuid.UUID `json:"contactId"`
	FundID      uuid.UUID `json:"fundId"`
	ContactName string    `json:"contactName"`
	FundName    string    `json:"fundName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FundContactListItemDTO is a contact as listed under a fund. The fund is
// omitted because the caller already has it.
type FundContactListItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
}

type CreateContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateFundRequest struct {
	Name string `json:"name"`
}

type AssignContactRequest struct {
	ContactID uuid.UUID `json:"contactId"`
	FundID    uuid.UUID `json:"fundId"`
}

func newContactDTO(c *types.Contact) ContactDTO {
	return ContactDTO{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newFundDTO(f *types.Fund) FundDTO {
	return FundDTO{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
