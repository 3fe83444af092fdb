// Copyright 2024 by the Authors
// This file is part of the go-uplc library.
//
// The go-uplc library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-uplc library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-uplc library. If not, see <http://www.gnu.org/licenses/>.

// Package uplc holds the Untyped Plutus Core term and value model: the input
// language's AST, its binary codec, and the constant/Data value domain. It
// has no dependency on the CEK machine or the builtin catalog (package
// core/vm), so the wire format can be parsed and round-tripped independently
// of evaluation.
package uplc

import "github.com/core-coin/go-uplc/params"

// BuiltinID is the small integer opcode a Builtin term carries. The full
// catalog (arity, forces, denotation, cost) is owned by package core/vm;
// this package only needs the stable numbering to decode/encode terms.
type BuiltinID int

// Term is the input language. Pointers to subterms are strict ownership
// edges: a Term is a tree, never a DAG (spec.md §3).
type Term interface {
	isTerm()
}

// Var is a de-Bruijn index: a nonnegative integer where zero refers to the
// innermost binder.
type Var struct {
	Index uint64
}

// Lambda is a single-argument abstraction. ParamName is a display hint only;
// it plays no role in evaluation, which resolves variables by de-Bruijn
// index.
type Lambda struct {
	ParamName string
	Body      Term
}

// Apply is function application.
type Apply struct {
	Function Term
	Argument Term
}

// Delay suspends a term; it is forced by a matching Force.
type Delay struct {
	Body Term
}

// Force evaluates a suspended Delay (or satisfies a pending builtin force).
type Force struct {
	Body Term
}

// Const wraps a fully-formed value as a term.
type Const struct {
	Value Constant
}

// BuiltinRef names a builtin function by its catalog opcode.
type BuiltinRef struct {
	ID BuiltinID
}

// ErrorTerm unconditionally fails evaluation with UserError.
type ErrorTerm struct{}

// Constr builds a scrutinee-ready constructor value, tag plus ordered
// arguments.
type Constr struct {
	Tag  uint64
	Args []Term
}

// Case scrutinises a term and dispatches to the branch selected by the
// resulting VConstr's tag.
type Case struct {
	Scrutinee Term
	Branches  []Term
}

func (*Var) isTerm()        {}
func (*Lambda) isTerm()     {}
func (*Apply) isTerm()      {}
func (*Delay) isTerm()      {}
func (*Force) isTerm()      {}
func (*Const) isTerm()      {}
func (*BuiltinRef) isTerm() {}
func (*ErrorTerm) isTerm()  {}
func (*Constr) isTerm()     {}
func (*Case) isTerm()       {}

// Program is a parsed UPLC program: a version header plus a root term.
type Program struct {
	Version params.ProgramVersion
	Term     Term
}
