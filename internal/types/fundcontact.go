package types

import (
	"github.com/google/uuid"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

// FundContact links a contact to a fund. The (contact_id, fund_id) pair is
// unique among non-deleted rows; unassignment removes the row outright.
type FundContact struct {
	Base
	ContactID uuid.UUID `gorm:"type:uuid;not null;index;column:contact_id" json:"contactId"`
	FundID    uuid.UUID `gorm:"type:uuid;not null;index;column:fund_id" json:"fundId"`

	Contact *Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	Fund    *Fund    `gorm:"foreignKey:FundID" json:"fund,omitempty"`
}

func (FundContact) TableName() string {
	return "fund_contacts"
}

func NewFundContact(contactID, fundID uuid.UUID) result.Result[*FundContact] {
	if contactID == uuid.Nil {
		return result.NotFound[*FundContact](domain.NotFound("Contact"))
	}
	if fundID == uuid.Nil {
		return result.NotFound[*FundContact](domain.NotFound("Fund"))
	}

	fc := &FundContact{
		Base:      NewBase(),
		ContactID: contactID,
		FundID:    fundID,
	}
	return result.Success(fc)
}
