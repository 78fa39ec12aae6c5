// Package pigroups: the caller-owned parameter registry.
// The registry is an explicit context object passed into computations by
// reference; there is no process-wide singleton. Callers that share one
// Registry across goroutines must serialize access themselves — the
// computation assumes a stable snapshot for its duration.

package pigroups

import (
	"strings"

	"github.com/katalvlaran/buckpi/dimension"
)

// Entry pairs a symbol with its parameter for bulk registration.
type Entry struct {
	Symbol string
	Param  dimension.Param
}

// Registry is an ordered, duplicate-free sequence of (symbol, parameter)
// pairs. The zero value is NOT ready to use; construct with NewRegistry.
type Registry struct {
	syms   []string
	params map[string]dimension.Param
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{params: make(map[string]dimension.Param)}
}

// Add appends (sym, p) if sym is not already present. Re-adding an
// existing symbol is a no-op, not an error — appending is idempotent.
// A nil parameter or empty symbol is rejected and the registry is left
// unchanged.
func (r *Registry) Add(sym string, p dimension.Param) error {
	if sym == "" {
		return ErrEmptySymbol
	}
	if p == nil {
		return ErrNilParam
	}
	if _, ok := r.params[sym]; ok {
		return nil
	}
	r.syms = append(r.syms, sym)
	r.params[sym] = p
	return nil
}

// Register replaces the registry's whole content with entries, in order.
// Validation is complete before anything is committed: on any error
// (empty symbol, nil parameter, duplicate symbol within entries) the
// previous content is fully preserved.
func (r *Registry) Register(entries ...Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Symbol == "" {
			return ErrEmptySymbol
		}
		if e.Param == nil {
			return ErrNilParam
		}
		if _, dup := seen[e.Symbol]; dup {
			return ErrDuplicateSymbol
		}
		seen[e.Symbol] = struct{}{}
	}

	r.syms = make([]string, 0, len(entries))
	r.params = make(map[string]dimension.Param, len(entries))
	for _, e := range entries {
		r.syms = append(r.syms, e.Symbol)
		r.params[e.Symbol] = e.Param
	}
	return nil
}

// Clear removes every entry.
func (r *Registry) Clear() {
	r.syms = nil
	r.params = make(map[string]dimension.Param)
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int { return len(r.syms) }

// Symbols returns the symbols in registration order (copy).
func (r *Registry) Symbols() []string {
	out := make([]string, len(r.syms))
	copy(out, r.syms)
	return out
}

// Param returns the parameter registered under sym, if any.
func (r *Registry) Param(sym string) (dimension.Param, bool) {
	p, ok := r.params[sym]
	return p, ok
}

// Entries returns the (symbol, parameter) pairs in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.syms))
	for i, s := range r.syms {
		out[i] = Entry{Symbol: s, Param: r.params[s]}
	}
	return out
}

// String lists the registry one "sym = param" line at a time.
func (r *Registry) String() string {
	var b strings.Builder
	for _, s := range r.syms {
		b.WriteString(s)
		b.WriteString(" = ")
		b.WriteString(r.params[s].String())
		b.WriteByte('\n')
	}
	return b.String()
}
