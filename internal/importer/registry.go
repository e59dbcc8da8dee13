package importer

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Definition wires one importable entity kind into the pipeline: its
// expected columns, how to validate and build insert parameters, and how
// to persist under either strategy. OwnerID is non-nil only for kinds that
// reference a realtor and must pass foreign-key resolution.
type Definition struct {
	Kind    string
	Label   string
	Aliases []string

	Fields   []FieldSpec
	Validate func(rec Record) []string
	OwnerID  func(rec Record) int64

	Build       func(rec Record, policy DatePolicy) any
	Insert      func(ctx context.Context, store Store, params any) (int64, error)
	InsertBatch func(ctx context.Context, store Store, batch []any) (int64, error)
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

// Register adds an entity definition. Panics on a duplicate kind or alias.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, key := range append([]string{def.Kind}, def.Aliases...) {
		if _, exists := registry[key]; exists {
			panic(fmt.Sprintf("entity already registered: %s", key))
		}
		registry[key] = def
	}
}

// Lookup resolves an entity kind or alias.
func Lookup(kind string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[kind]
	return def, ok
}

// Kinds returns the canonical entity kinds, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]bool)
	var kinds []string
	for _, def := range registry {
		if !seen[def.Kind] {
			seen[def.Kind] = true
			kinds = append(kinds, def.Kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}
