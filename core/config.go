package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// limitsDocument is the on-disk shape of config/limits.yaml:
//
//	parameters:
//	  threshold_reputation:
//	    main: {0: 500, 150000: 1000}
//	    test: {0: 500}
type limitsDocument struct {
	Parameters map[Parameter]map[Network]map[int64]int64 `yaml:"parameters"`
}

// LoadLimitTable decodes a Limit Table configuration document.
func LoadLimitTable(path string) (*LimitTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("limit table: read %s: %w", path, err)
	}
	var doc limitsDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("limit table: parse %s: %w", path, err)
	}
	return NewLimitTable(doc.Parameters), nil
}

// checkpointsDocument is the on-disk shape of config/checkpoints.yaml:
//
//	kinds:
//	  ACCOUNT_USER:
//	    - version: v1
//	      main: 0
//	      test: 0
//	      alt: 0
type checkpointsDocument struct {
	Kinds map[string][]struct {
		Version string `yaml:"version"`
		Main    int64  `yaml:"main"`
		Test    int64  `yaml:"test"`
		Alt     int64  `yaml:"alt"`
	} `yaml:"kinds"`
}

// CheckpointHeights is the decoded activation-height ladder for one kind,
// keyed by the checkpoint's symbolic version name (e.g. "v1",
// "disable_for_blocked", "multiple_blocking"). The validator families'
// factory tables (§4.5) are Go literals in each validator file and are
// not built from this type.
type CheckpointHeights struct {
	Version              string
	MainHeight           int64
	TestHeight           int64
	AltHeight            int64
}

// LoadCheckpointHeights decodes config/checkpoints.yaml into a map of
// kind name to its ordered checkpoint ladder.
func LoadCheckpointHeights(path string) (map[string][]CheckpointHeights, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checkpoints: read %s: %w", path, err)
	}
	var doc checkpointsDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("checkpoints: parse %s: %w", path, err)
	}
	out := make(map[string][]CheckpointHeights, len(doc.Kinds))
	for kind, entries := range doc.Kinds {
		ladder := make([]CheckpointHeights, 0, len(entries))
		for _, e := range entries {
			ladder = append(ladder, CheckpointHeights{
				Version: e.Version, MainHeight: e.Main, TestHeight: e.Test, AltHeight: e.Alt,
			})
		}
		out[kind] = ladder
	}
	return out, nil
}
