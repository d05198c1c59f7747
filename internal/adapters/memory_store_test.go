package adapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsobral/solid/internal/adapters"
	"github.com/lsobral/solid/pkg/domain"
	"github.com/lsobral/solid/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunProgressStoreContract(t, adapters.NewMemoryStore())
}

func TestMemoryStore_List(t *testing.T) {
	store := adapters.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "zoe", domain.NewProgress("zoe")))
	require.NoError(t, store.Save(ctx, "ana", domain.NewProgress("ana")))

	readers, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ana", "zoe"}, readers, "listing must be sorted")
}

func TestMemoryStore_SaveCopiesRecord(t *testing.T) {
	store := adapters.NewMemoryStore()
	ctx := context.Background()

	progress := domain.NewProgress("ana")
	require.NoError(t, store.Save(ctx, "ana", progress))

	// Mutating the original after Save must not leak into the store.
	progress.MarkCompleted("srp", nil, time.Now())

	loaded, err := store.Load(ctx, "ana")
	require.NoError(t, err)
	assert.False(t, loaded.Completed("srp"))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := adapters.NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, "shared", domain.NewProgress("shared"))
			_, _ = store.Load(ctx, "shared")
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	_, err := store.Load(ctx, "shared")
	assert.NoError(t, err)
}
