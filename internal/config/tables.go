package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/cognomen/internal/locale"
	"github.com/talgya/cognomen/internal/naming"
)

// Tables are the naming tables a deployment may tune.
type Tables struct {
	Thresholds    naming.EraThresholds
	DLCAdjectives map[string]string
}

// tablesFile is the YAML layout of a tables file:
//
//	eras:
//	  2: {medium: 4, large: 10}
//	dlc_adjectives:
//	  Civilization_Era6_Nigeria: Nigerian
type tablesFile struct {
	Eras          map[int]naming.TerritoryRange `yaml:"eras"`
	DLCAdjectives map[string]string             `yaml:"dlc_adjectives"`
}

// DefaultTables returns the built-in thresholds and DLC adjectives.
func DefaultTables() Tables {
	return Tables{
		Thresholds:    naming.DefaultEraThresholds(),
		DLCAdjectives: locale.DefaultDLCAdjectives(),
	}
}

// LoadTables reads a tables file and merges it over the defaults. An empty
// path returns the defaults. Eras and adjectives present in the file replace
// the built-in entries with the same key.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables: %w", err)
	}

	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Tables{}, fmt.Errorf("parse tables %s: %w", path, err)
	}

	maps.Copy(tables.Thresholds, file.Eras)
	for key, adj := range file.DLCAdjectives {
		if adj == "" {
			return Tables{}, fmt.Errorf("tables %s: empty adjective for %q", path, key)
		}
		tables.DLCAdjectives[key] = adj
	}

	if err := tables.Thresholds.Validate(); err != nil {
		return Tables{}, fmt.Errorf("tables %s: %w", path, err)
	}
	return tables, nil
}
