package core

import (
	"fmt"
	"os"

	yamlv2 "gopkg.in/yaml.v2"
)

// EscapeEntry records one historic checkpoint escape: a transaction that
// violates a rule but was admitted before the rule existed. It must be
// preserved bit-compatibly with existing chain data (§7, §9).
type EscapeEntry struct {
	Hash  string `yaml:"hash"`
	Kind  Kind   `yaml:"kind"`
	Error string `yaml:"error"`
}

type escapeKey struct {
	Hash  string
	Kind  Kind
	Error string
}

// EscapeRegistry is a read-only first-class input: a set of (hash, kind,
// error) triples that short-circuit a validation failure to Success.
// Diverging from it must be visible as a diff to this registry, never as
// a scattered conditional in validator code (§9).
type EscapeRegistry struct {
	allowed map[escapeKey]bool
}

// NewEscapeRegistry builds a registry from a literal entry list, for use
// in tests and as the building block LoadEscapeRegistry decodes into.
func NewEscapeRegistry(entries []EscapeEntry) *EscapeRegistry {
	r := &EscapeRegistry{allowed: make(map[escapeKey]bool, len(entries))}
	for _, e := range entries {
		r.allowed[escapeKey{Hash: e.Hash, Kind: e.Kind, Error: e.Error}] = true
	}
	return r
}

// LoadEscapeRegistry decodes config/escapes.yaml, a flat, append-only
// list independent of the nested Limit Table / Checkpoint configuration.
func LoadEscapeRegistry(path string) (*EscapeRegistry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("escapes: read %s: %w", path, err)
	}
	var entries []EscapeEntry
	if err := yamlv2.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("escapes: parse %s: %w", path, err)
	}
	return NewEscapeRegistry(entries), nil
}

// Allow reports whether (hash, kind, err) is a recorded historic escape.
func (r *EscapeRegistry) Allow(hash string, kind Kind, err error) bool {
	if r == nil || err == nil {
		return false
	}
	return r.allowed[escapeKey{Hash: hash, Kind: kind, Error: err.Error()}]
}
