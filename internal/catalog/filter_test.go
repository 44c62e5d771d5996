package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tushyr/thekabar/internal/domain"
)

func TestFilterSearch(t *testing.T) {
	shops := Seed()

	got := Filter(shops, Query{Search: "connaught"}, at(15, 0))
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, "Connaught Place", s.Area)
	}

	got = Filter(shops, Query{Search: "JAZZ"}, at(15, 0))
	require.Len(t, got, 1)
	assert.Equal(t, "The Piano Man Jazz Club", got[0].Name)

	got = Filter(shops, Query{Search: "   "}, at(15, 0))
	assert.Len(t, got, len(shops), "blank search keeps everything")
}

func TestFilterCategory(t *testing.T) {
	shops := Seed()

	thekas := Filter(shops, Query{Category: "theka"}, at(15, 0))
	for _, s := range thekas {
		assert.Equal(t, domain.TypeTheka, s.Type)
	}
	assert.Len(t, thekas, 3)

	premium := Filter(shops, Query{Category: "premium"}, at(15, 0))
	for _, s := range premium {
		assert.True(t, s.IsPremium)
	}

	all := Filter(shops, Query{Category: "all"}, at(15, 0))
	assert.Len(t, all, len(shops))
}

func TestFilterOpenNow(t *testing.T) {
	shops := Seed()

	// 15:00 - bars that open in the evening are filtered out
	afternoon := Filter(shops, Query{OpenNow: true}, at(15, 0))
	for _, s := range afternoon {
		assert.True(t, IsOpenAt(&s, at(15, 0)), "%s should be open", s.Name)
	}

	// 03:00 - nothing in the catalog is open
	night := Filter(shops, Query{OpenNow: true}, at(3, 0))
	assert.Empty(t, night)
}

func TestFilterCombined(t *testing.T) {
	shops := Seed()

	got := Filter(shops, Query{Search: "connaught", Category: "bar", OpenNow: true}, at(15, 0))
	require.Len(t, got, 1)
	assert.Equal(t, "Lord of the Drinks", got[0].Name)
}

func TestMemoryRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(Seed())

	shops, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, shops, 8)

	shop, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Sidecar", shop.Name)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrShopNotFound)

	updated, err := repo.SetUserReported(ctx, 3, domain.ReportedClosed)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportedClosed, updated.UserReported)

	// the returned shop is a copy, not a live reference
	updated.Name = "mutated"
	again, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Sidecar", again.Name)
	assert.Equal(t, domain.ReportedClosed, again.UserReported)

	_, err = repo.SetUserReported(ctx, 999, domain.ReportedOpen)
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}
