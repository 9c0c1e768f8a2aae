package types

import (
	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

// Fund is an investment fund. Name uniqueness among non-deleted funds is
// case- and trim-insensitive; the repository and a partial unique index
// enforce it.
type Fund struct {
	Base
	Name string `gorm:"type:varchar(100);not null;column:name" json:"name"`
}

func (Fund) TableName() string {
	return "funds"
}

func NewFund(name string) result.Result[*Fund] {
	nameRes := domain.NewName(name)
	if nameRes.IsFailure() {
		return result.From[*Fund](nameRes)
	}

	fund := &Fund{
		Base: NewBase(),
		Name: nameRes.Value().Value(),
	}
	return result.Success(fund)
}

func (f *Fund) Update(name string) result.Result[*Fund] {
	nameRes := domain.NewName(name)
	if nameRes.IsFailure() {
		return result.From[*Fund](nameRes)
	}
	f.Name = nameRes.Value().Value()
	return result.Success(f)
}

// CanDelete mirrors the contact-side invariant. Fund deletion is not
// exposed over the API yet, but the contract is kept for when it is.
func (f *Fund) CanDelete(hasContactAssignments bool) result.Result[bool] {
	if hasContactAssignments {
		return result.Conflict[bool](domain.ErrFundCannotDelete)
	}
	return result.Success(true)
}
