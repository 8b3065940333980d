package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

// RecordAccessorContractTest is a reusable suite that verifies an adapter
// complies with ports.RecordAccessor. seed maps identities to the records
// the accessor is expected to return.
func RecordAccessorContractTest(t *testing.T, accessor ports.RecordAccessor, seed map[string]domain.Record) {
	t.Helper()
	ctx := context.Background()

	t.Run("Fetch_Success", func(t *testing.T) {
		for identity, want := range seed {
			got, err := accessor.Fetch(ctx, identity)
			if err != nil {
				t.Fatalf("unexpected error fetching %s: %v", identity, err)
			}
			if got == nil {
				t.Fatalf("nil record for %s", identity)
			}
			if got.AnnualIncome != want.AnnualIncome || got.CurrentSavings != want.CurrentSavings {
				t.Errorf("record mismatch for %s. got %+v, want %+v", identity, got, want)
			}
		}
	})

	t.Run("Fetch_NotFound", func(t *testing.T) {
		_, err := accessor.Fetch(ctx, "no-such-identity")
		if err == nil {
			t.Fatal("expected error for unknown identity, got nil")
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("Fetch_ReturnsCopy", func(t *testing.T) {
		for identity := range seed {
			first, err := accessor.Fetch(ctx, identity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			first.CurrentSavings = -1

			second, err := accessor.Fetch(ctx, identity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if second.CurrentSavings == -1 {
				t.Error("accessor leaked internal state: mutation visible on refetch")
			}
			break
		}
	})
}
