package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVassalName(t *testing.T) {
	tests := []struct {
		era  int
		want string
	}{
		{1, "Subjugated Gallic State"},
		{2, "Tributary Gallic State"},
		{3, "Feudatory Gallic State"},
		{4, "Gallic Viceroyalty"},
		{5, "Roman Gallic Protectorate"},
		{6, "Roman Gallic State"},
		{0, "Vassal Gallic State"},
		{7, "Vassal Gallic State"},
		{-1, "Vassal Gallic State"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VassalName("Gallic", tt.era, "Roman"), "liege era %d", tt.era)
	}
}

func TestVassalNameReplacesGovernment(t *testing.T) {
	base := Generate(Profile{Civics: Monarchy}, SizeLarge, "Gallic", "Brennus", Male)
	got := VassalName("Gallic", 5, "Roman")

	assert.Equal(t, "Roman Gallic Protectorate", got)
	assert.NotContains(t, got, base.GovernmentName)
}
