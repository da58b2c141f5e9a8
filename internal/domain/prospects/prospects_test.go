package prospects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleLimits(t *testing.T) {
	all := Sample(0)
	require.NotEmpty(t, all)

	assert.Len(t, Sample(1), 1)
	assert.Len(t, Sample(len(all)), len(all))
	// limits beyond the dataset clamp to the dataset
	assert.Len(t, Sample(100), len(all))
}

func TestSampleShape(t *testing.T) {
	all := Sample(0)

	first := all[0]
	assert.Equal(t, "Sunrise Pediatrics", first.Name)
	require.NotNil(t, first.Website)
	require.NotNil(t, first.LastPostDays)
	assert.Equal(t, 58, *first.LastPostDays)

	// null-bearing record keeps its nils for JSON fidelity
	second := all[1]
	assert.Nil(t, second.Website)
	require.NotNil(t, second.Instagram)
}

func TestSampleReturnsCopies(t *testing.T) {
	a := Sample(1)
	a[0].Name = "mutated"

	b := Sample(1)
	assert.Equal(t, "Sunrise Pediatrics", b[0].Name)
}
