// Package errors provides the error taxonomy for scalar and its tools. It includes the
// stdlib's functions so callers only need one errors import.
package errors

import (
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/errors"
)

//go:generate stringer -type=Category -linecomment

// Category represents the category of the error.
type Category uint32

// Category implements errors.Category.
func (c Category) Category() string {
	return c.String()
}

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown Category = Category(0) // Unknown
	// CatUser represents an error that is caused by bad user input, such as a type list
	// naming a type that does not exist.
	CatUser Category = Category(1) // User
)

//go:generate stringer -type=Type -linecomment

// Type represents the type of the error.
type Type uint16

// Type implements errors.Type.
func (t Type) Type() string {
	return t.String()
}

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown Type = Type(0) // Unknown
	// TypeParameter represents a parameter that didn't pass validation.
	TypeParameter Type = Type(1) // Parameter
	// TypeFS represents an error with the file system.
	TypeFS Type = Type(2) // FS
	// TypeParse represents input that could not be parsed.
	TypeParse Type = Type(3) // Parse
)

// Error is the error type for this module. Error implements github.com/gostdlib/base/errors.E .
type Error = errors.Error

// EOption is an optional argument for E().
type EOption = errors.EOption

// E creates a new Error with the given parameters.
func E(ctx context.Context, c Category, t Type, msg error, options ...EOption) Error {
	// We are a wrapper, so the caller is one frame further up. A caller provided
	// WithCallNum comes later and wins.
	opts := make([]errors.EOption, 0, len(options)+1)
	opts = append(opts, errors.WithCallNum(2))
	opts = append(opts, options...)

	return errors.E(ctx, c, t, msg, opts...)
}
