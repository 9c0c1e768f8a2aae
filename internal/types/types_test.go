package types

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewBaseFreshIdentity(t *testing.T) {
	b := NewBase()
	if b.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if b.IsDeleted || b.DeletedAt != nil {
		t.Fatalf("new entity must not be deleted")
	}
	if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestMarkDeletedIdempotent(t *testing.T) {
	b := NewBase()
	b.MarkDeleted()
	if !b.IsDeleted || b.DeletedAt == nil {
		t.Fatalf("expected deleted state")
	}
	first := *b.DeletedAt

	time.Sleep(2 * time.Millisecond)
	b.MarkDeleted()
	if !b.DeletedAt.Equal(first) {
		t.Fatalf("DeletedAt moved on repeated MarkDeleted: %v -> %v", first, *b.DeletedAt)
	}
}

func TestClearDeletedRoundTrip(t *testing.T) {
	b := NewBase()
	b.MarkDeleted()
	b.ClearDeleted()
	if b.IsDeleted || b.DeletedAt != nil {
		t.Fatalf("restore did not clear soft-delete state")
	}
}

func TestSameEntityComparesByID(t *testing.T) {
	a := &Contact{Base: NewBase(), Name: "A"}
	b := &Contact{Base: a.Base, Name: "B"}
	c := &Contact{Base: NewBase(), Name: "A"}

	if !SameEntity(a, b) {
		t.Fatalf("entities with equal ids must be the same entity")
	}
	if SameEntity(a, c) {
		t.Fatalf("entities with different ids must differ even with equal values")
	}
}

func TestNewContactValidationOrder(t *testing.T) {
	// Name fails first even when email and phone are also invalid.
	res := NewContact("", "bad-email", "123")
	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if res.Err().Code != "Contact.NameRequired" {
		t.Fatalf("expected name failure first, got %q", res.Err().Code)
	}

	res = NewContact("John", "bad-email", "123")
	if res.Err() == nil || res.Err().Code != "Contact.InvalidEmail" {
		t.Fatalf("expected email failure second, got %+v", res.Err())
	}

	res = NewContact("John", "john@example.com", "123")
	if res.Err() == nil || res.Err().Code != "Contact.InvalidPhoneNumber" {
		t.Fatalf("expected phone failure third, got %+v", res.Err())
	}
}

func TestNewContactSuccess(t *testing.T) {
	res := NewContact("John Doe", "john@example.com", "(123) 456-7890")
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %+v", res.Err())
	}
	c := res.Value()
	if c.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if c.Name != "John Doe" || c.Email != "john@example.com" || c.PhoneNumber != "(123) 456-7890" {
		t.Fatalf("fields not stored verbatim: %+v", c)
	}
}

func TestNewContactOptionalFieldsAbsent(t *testing.T) {
	res := NewContact("John Doe", "", "")
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %+v", res.Err())
	}
	c := res.Value()
	if c.Email != "" || c.PhoneNumber != "" {
		t.Fatalf("expected absent optional fields, got %+v", c)
	}
}

func TestContactUpdateFullReplace(t *testing.T) {
	c := NewContact("John Doe", "john@example.com", "1234567890").Value()
	id := c.ID
	created := c.CreatedAt

	res := c.Update("Jane Doe", "", "")
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %+v", res.Err())
	}
	if c.Name != "Jane Doe" {
		t.Fatalf("name not replaced: %q", c.Name)
	}
	if c.Email != "" || c.PhoneNumber != "" {
		t.Fatalf("omitted optional fields must be cleared, got %+v", c)
	}
	if c.ID != id || !c.CreatedAt.Equal(created) {
		t.Fatalf("identity or CreatedAt changed on update")
	}
}

func TestContactUpdateRejectsInvalid(t *testing.T) {
	c := NewContact("John Doe", "john@example.com", "").Value()
	res := c.Update(strings.Repeat("x", 101), "", "")
	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if res.Err().Code != "Contact.NameTooLong" {
		t.Fatalf("unexpected code %q", res.Err().Code)
	}
	if c.Name != "John Doe" {
		t.Fatalf("failed update must not mutate the entity")
	}
}

func TestContactCanDelete(t *testing.T) {
	c := NewContact("John Doe", "", "").Value()
	if res := c.CanDelete(false); res.IsFailure() {
		t.Fatalf("unassigned contact should be deletable: %+v", res.Err())
	}
	res := c.CanDelete(true)
	if res.IsSuccess() {
		t.Fatalf("assigned contact must not be deletable")
	}
	if res.Err().Code != "Contact.CannotDelete" {
		t.Fatalf("unexpected code %q", res.Err().Code)
	}
}

func TestNewFundAndUpdate(t *testing.T) {
	res := NewFund("Growth Fund")
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %+v", res.Err())
	}
	f := res.Value()

	if upd := f.Update(""); upd.IsSuccess() || upd.Err().Code != "Contact.NameRequired" {
		t.Fatalf("expected name-required failure, got %+v", upd.Err())
	}
	if upd := f.Update("Value Fund"); upd.IsFailure() || f.Name != "Value Fund" {
		t.Fatalf("rename failed: %+v", upd.Err())
	}
}

func TestFundCanDelete(t *testing.T) {
	f := NewFund("Growth Fund").Value()
	if res := f.CanDelete(true); res.IsSuccess() || res.Err().Code != "Fund.CannotDelete" {
		t.Fatalf("expected fund delete conflict, got %+v", res.Err())
	}
	if res := f.CanDelete(false); res.IsFailure() {
		t.Fatalf("unexpected failure: %+v", res.Err())
	}
}

func TestNewFundContactRequiresIDs(t *testing.T) {
	fundID := uuid.New()
	contactID := uuid.New()

	res := NewFundContact(uuid.Nil, fundID)
	if res.IsSuccess() || res.Err().Code != "Contact.NotFound" {
		t.Fatalf("expected Contact.NotFound, got %+v", res.Err())
	}

	res = NewFundContact(contactID, uuid.Nil)
	if res.IsSuccess() || res.Err().Code != "Fund.NotFound" {
		t.Fatalf("expected Fund.NotFound, got %+v", res.Err())
	}

	res = NewFundContact(contactID, fundID)
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %+v", res.Err())
	}
	fc := res.Value()
	if fc.ContactID != contactID || fc.FundID != fundID || fc.ID == uuid.Nil {
		t.Fatalf("unexpected fund contact: %+v", fc)
	}
}
