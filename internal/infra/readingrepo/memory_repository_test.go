package readingrepo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minthura/astrologic/internal/domain/synthesis"
)

func TestMemoryRepositoryInsertAssignsIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Insert(ctx, synthesis.StoredReading{Name: "Aye", Reading: "one"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, synthesis.StoredReading{Name: "Kyaw", Reading: "two"})
	require.NoError(t, err)

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.False(t, first.CreatedAt.IsZero())
}

func TestMemoryRepositoryRecentNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Insert(ctx, synthesis.StoredReading{Reading: fmt.Sprintf("reading-%d", i)})
		require.NoError(t, err)
	}

	records, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "reading-4", records[0].Reading)
	require.Equal(t, "reading-2", records[2].Reading)
}

func TestMemoryRepositoryRecentUnlimited(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Insert(ctx, synthesis.StoredReading{Reading: "only"})
	require.NoError(t, err)

	records, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
}
