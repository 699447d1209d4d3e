// Package naming turns a polity's government, ideology, size and leader into
// display names: a government-form name, a ruler title and an avatar name.
package naming

import (
	"errors"
	"fmt"
	"sort"
)

// SizeTier qualifies a polity's territorial extent relative to its era.
type SizeTier uint8

const (
	SizeSmall SizeTier = iota
	SizeMedium
	SizeLarge
)

// String returns the tier name.
func (t SizeTier) String() string {
	switch t {
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "small"
	}
}

// ErrThresholds reports an inconsistent era threshold table.
var ErrThresholds = errors.New("invalid era thresholds")

// TerritoryRange holds the minimum territory counts for the medium and large tiers.
type TerritoryRange struct {
	Medium int `yaml:"medium"`
	Large  int `yaml:"large"`
}

// Classify returns the tier for a territory count.
func (r TerritoryRange) Classify(territories int) SizeTier {
	if territories >= r.Large {
		return SizeLarge
	}
	if territories >= r.Medium {
		return SizeMedium
	}
	return SizeSmall
}

// EraThresholds maps an era index to its territory range.
type EraThresholds map[int]TerritoryRange

// DefaultEraThresholds returns the built-in table for eras 0 through 6.
func DefaultEraThresholds() EraThresholds {
	return EraThresholds{
		0: {Medium: 0, Large: 2},  // Neolithic
		1: {Medium: 3, Large: 6},  // Ancient
		2: {Medium: 3, Large: 9},  // Classical
		3: {Medium: 6, Large: 12}, // Medieval
		4: {Medium: 7, Large: 15}, // Early Modern
		5: {Medium: 8, Large: 18}, // Industrial
		6: {Medium: 9, Large: 21}, // Contemporary
	}
}

// Classify returns the size tier for a territory count in the given era.
// Eras missing from the table (modded eras) are always small.
func (t EraThresholds) Classify(era, territories int) SizeTier {
	r, ok := t[era]
	if !ok {
		return SizeSmall
	}
	return r.Classify(territories)
}

// Validate checks that every range has medium <= large and that both bounds
// never decrease from one era to the next.
func (t EraThresholds) Validate() error {
	eras := make([]int, 0, len(t))
	for era := range t {
		if era < 0 {
			return fmt.Errorf("%w: negative era %d", ErrThresholds, era)
		}
		eras = append(eras, era)
	}
	sort.Ints(eras)

	var prev *TerritoryRange
	for _, era := range eras {
		r := t[era]
		if r.Medium < 0 || r.Medium > r.Large {
			return fmt.Errorf("%w: era %d has medium %d, large %d", ErrThresholds, era, r.Medium, r.Large)
		}
		if prev != nil && (r.Medium < prev.Medium || r.Large < prev.Large) {
			return fmt.Errorf("%w: era %d decreases from previous era", ErrThresholds, era)
		}
		prev = &r
	}
	return nil
}
