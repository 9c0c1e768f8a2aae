package repos

import (
	"context"
	"testing"

	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

func mustFund(t *testing.T, name string) *types.Fund {
	t.Helper()
	res := types.NewFund(name)
	if res.IsFailure() {
		t.Fatalf("NewFund: %+v", res.Err())
	}
	return res.Value()
}

func TestExistsByNameCaseAndTrimInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewFundRepo(newTestDB(t), newTestLogger())

	repo.Add(ctx, nil, mustFund(t, "Test Fund"))

	variants := []string{
		"Test Fund",
		"test fund",
		"TEST FUND",
		"  test FUND  ",
	}
	for _, name := range variants {
		res := repo.ExistsByName(ctx, nil, name)
		if res.IsFailure() {
			t.Fatalf("ExistsByName(%q): %+v", name, res.Err())
		}
		if !res.Value() {
			t.Fatalf("ExistsByName(%q): expected true", name)
		}
	}

	res := repo.ExistsByName(ctx, nil, "Other Fund")
	if res.IsFailure() || res.Value() {
		t.Fatalf("unrelated name must not exist")
	}
}

func TestExistsByNameIgnoresSoftDeletedFunds(t *testing.T) {
	ctx := context.Background()
	repo := NewFundRepo(newTestDB(t), newTestLogger())

	fund := mustFund(t, "Test Fund")
	repo.Add(ctx, nil, fund)
	repo.SoftDelete(ctx, nil, fund.ID)

	res := repo.ExistsByName(ctx, nil, "Test Fund")
	if res.IsFailure() {
		t.Fatalf("ExistsByName: %+v", res.Err())
	}
	if res.Value() {
		t.Fatalf("soft-deleted fund must not block reuse of its name")
	}
}
