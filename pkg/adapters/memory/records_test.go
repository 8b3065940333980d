package memory_test

import (
	"context"
	"testing"

	"github.com/shlokkku/Ageis-AI/pkg/adapters/memory"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore_Contract(t *testing.T) {
	seed := map[string]domain.Record{
		"user-1": {ID: "user-1", AnnualIncome: 60000, CurrentSavings: 50000},
		"user-2": {ID: "user-2", AnnualIncome: 85000, CurrentSavings: 210000},
	}

	store := memory.NewRecordStore()
	for _, rec := range seed {
		store.Seed(rec)
	}

	tests.RecordAccessorContractTest(t, store, seed)
}

func TestDocumentIndex_Search(t *testing.T) {
	idx := memory.NewDocumentIndex()
	idx.Add("user-1", "plan.md", "Withdrawal before age 55 incurs a penalty.")
	idx.Add("user-1", "policy.md", "Beneficiary changes require written notice.")
	idx.Add("user-2", "other.md", "Withdrawal rules for a different member.")

	ctx := context.Background()

	snippets, err := idx.Search(ctx, "user-1", "what are the withdrawal rules?")
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Equal(t, "plan.md", snippets[0].DocumentID)

	snippets, err = idx.Search(ctx, "user-1", "zzz nothing matches qqq")
	require.NoError(t, err)
	assert.Empty(t, snippets)
}
