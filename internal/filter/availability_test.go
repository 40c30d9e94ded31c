package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeinsight-catalog/internal/models"
)

func sample(n int) []models.Listing {
	out := make([]models.Listing, n)
	for i := range out {
		out[i] = models.Listing{ID: fmt.Sprintf("l-%d", i), Available: i%3 != 0}
	}
	return out
}

func TestApplyAllIsIdentity(t *testing.T) {
	records := sample(7)
	assert.Equal(t, records, Apply(records, All))
}

func TestApplyPartitionsExactly(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 31} {
		records := sample(n)
		avail := Apply(records, Available)
		unavail := Apply(records, Unavailable)

		require.Equal(t, n, len(avail)+len(unavail), "n=%d", n)

		seen := map[string]int{}
		for _, r := range avail {
			assert.True(t, r.Available)
			seen[r.ID]++
		}
		for _, r := range unavail {
			assert.False(t, r.Available)
			seen[r.ID]++
		}
		for _, r := range records {
			assert.Equal(t, 1, seen[r.ID], "record %s", r.ID)
		}
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	records := []models.Listing{
		{ID: "c", Available: true},
		{ID: "a", Available: false},
		{ID: "b", Available: true},
	}
	got := Apply(records, Available)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sample(6)
	before := append([]models.Listing(nil), records...)

	_ = Apply(records, Available)
	_ = Apply(records, Unavailable)
	_ = Apply(records, Available)

	assert.Equal(t, before, records)
}

func TestApplyNil(t *testing.T) {
	assert.Empty(t, Apply(nil, Available))
	assert.Nil(t, Apply(nil, All))
}

func TestParseAvailability(t *testing.T) {
	cases := map[string]Availability{
		"":            All,
		"all":         All,
		"Available":   Available,
		"UNAVAILABLE": Unavailable,
	}
	for in, want := range cases {
		got, err := ParseAvailability(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAvailability("sold")
	assert.Error(t, err)
}

func TestNextCycles(t *testing.T) {
	assert.Equal(t, Available, All.Next())
	assert.Equal(t, Unavailable, Available.Next())
	assert.Equal(t, All, Unavailable.Next())
	assert.Equal(t, "unavailable", Unavailable.String())
}
