/*
Package script reads and executes operation scripts against lazy segment trees.

A script is a sequence of operations on a tree of fixed size, in the spirit of
the input of a competitive programming task. The text format has one
operation per line; '#' starts a comment:

	algebra min-add
	size 6
	values 0 0 0 0 0 0
	apply [1,4) 1
	apply 2 5 -2
	query [0,2)
	set 4 -10
	get 4
	query [,)

Ranges are written in interval notation without blanks, or as two integers
l r meaning [l,r). The same operations may be given in YAML, see ParseYAML.

Values and actions are written as plain literals and interpreted by the
algebra a script is run with (see Algebras).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package script

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

var (
	// ErrSyntax signals a malformed script line.
	ErrSyntax = errors.New("script: syntax error")
	// ErrValue signals a value or action literal the algebra cannot read.
	ErrValue = errors.New("script: invalid value")
	// ErrUnknownAlgebra signals an algebra name which is not registered.
	ErrUnknownAlgebra = errors.New("script: unknown algebra")
	// ErrUnknownOp signals an unknown operation keyword.
	ErrUnknownOp = errors.New("script: unknown operation")
	// ErrNoSize signals a script run without a tree size.
	ErrNoSize = errors.New("script: tree size missing")
)
