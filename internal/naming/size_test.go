package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	th := DefaultEraThresholds()

	tests := []struct {
		era, territories int
		want             SizeTier
	}{
		{0, 0, SizeMedium},
		{0, 1, SizeMedium},
		{0, 2, SizeLarge},
		{1, 2, SizeSmall},
		{1, 3, SizeMedium},
		{1, 5, SizeMedium},
		{1, 6, SizeLarge},
		{3, 11, SizeMedium},
		{3, 12, SizeLarge},
		{6, 8, SizeSmall},
		{6, 9, SizeMedium},
		{6, 21, SizeLarge},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.era, tt.territories), "era %d, %d territories", tt.era, tt.territories)
	}
}

func TestClassifyUnknownEraIsSmall(t *testing.T) {
	th := DefaultEraThresholds()
	assert.Equal(t, SizeSmall, th.Classify(7, 100))
	assert.Equal(t, SizeSmall, th.Classify(-1, 100))
}

func TestClassifyMonotonic(t *testing.T) {
	th := DefaultEraThresholds()
	for era := range th {
		prev := th.Classify(era, 0)
		for n := 1; n <= 40; n++ {
			got := th.Classify(era, n)
			require.GreaterOrEqual(t, got, prev, "era %d: tier dropped at %d territories", era, n)
			prev = got
		}
	}
}

func TestDefaultThresholdsValid(t *testing.T) {
	require.NoError(t, DefaultEraThresholds().Validate())
}

func TestValidateRejectsBadTables(t *testing.T) {
	inverted := EraThresholds{1: {Medium: 6, Large: 3}}
	assert.ErrorIs(t, inverted.Validate(), ErrThresholds)

	shrinking := EraThresholds{1: {Medium: 3, Large: 9}, 2: {Medium: 2, Large: 9}}
	assert.ErrorIs(t, shrinking.Validate(), ErrThresholds)

	negative := EraThresholds{-1: {Medium: 0, Large: 1}}
	assert.ErrorIs(t, negative.Validate(), ErrThresholds)
}

func TestSizeTierString(t *testing.T) {
	assert.Equal(t, "small", SizeSmall.String())
	assert.Equal(t, "medium", SizeMedium.String())
	assert.Equal(t, "large", SizeLarge.String())
}
