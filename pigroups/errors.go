// Package pigroups: sentinel error set.

package pigroups

import "errors"

var (
	// ErrNilRegistry indicates a nil *Registry was passed to a computation.
	ErrNilRegistry = errors.New("pigroups: nil registry")

	// ErrNilParam indicates an attempt to register a nil parameter.
	// The registry is left unchanged.
	ErrNilParam = errors.New("pigroups: nil parameter")

	// ErrEmptySymbol indicates an attempt to register under an empty symbol.
	ErrEmptySymbol = errors.New("pigroups: empty symbol")

	// ErrDuplicateSymbol indicates that a replace-all registration was
	// given the same symbol twice. Nothing is committed.
	ErrDuplicateSymbol = errors.New("pigroups: duplicate symbol")

	// ErrUnknownForm indicates an unrecognized output form. No
	// computation is performed and existing state is unaffected.
	ErrUnknownForm = errors.New("pigroups: unknown output form")

	// ErrUnknownMode indicates an unrecognized numeric mode in Options.
	ErrUnknownMode = errors.New("pigroups: unknown numeric mode")
)
