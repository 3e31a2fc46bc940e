// Package symboltable holds named, reusable Payloads (models) addressed
// by other payloads through a symbol reference. It is populated once
// during a pre-pass over a document's Model sections and is read-only
// for every parser that consults it afterward.
package symboltable

import "github.com/zendesk/snowcrash/internal/blueprint"

// SymbolTable maps a model name to its Payload. Names are compared
// case-sensitively, matching spec.
type SymbolTable struct {
	models map[string]blueprint.Payload
}

// New returns an empty table.
func New() *SymbolTable {
	return &SymbolTable{models: make(map[string]blueprint.Payload)}
}

// Copy returns a new table seeded with t's entries, so that a caller
// can supply an initial read-only mapping (used for cross-parse
// "redefinition" detection) without the original being mutated by a
// later parse.
func (t *SymbolTable) Copy() *SymbolTable {
	out := New()
	if t == nil {
		return out
	}
	for k, v := range t.models {
		out.models[k] = v
	}

	return out
}

// Lookup returns the model registered under name, if any.
func (t *SymbolTable) Lookup(name string) (blueprint.Payload, bool) {
	if t == nil {
		return blueprint.Payload{}, false
	}
	p, ok := t.models[name]

	return p, ok
}

// Has reports whether name is already registered.
func (t *SymbolTable) Has(name string) bool {
	_, ok := t.Lookup(name)

	return ok
}

// Define registers name -> payload, overwriting any prior entry. The
// caller is responsible for detecting and reporting redefinitions
// before calling Define with a value that should win.
func (t *SymbolTable) Define(name string, payload blueprint.Payload) {
	t.models[name] = payload
}

// Names returns the registered model names in no particular order; used
// only for diagnostics/tests.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.models))
	for k := range t.models {
		names = append(names, k)
	}

	return names
}
