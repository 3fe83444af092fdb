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

// Package ir implements the let-floating optimizer pass over a high-level
// annotated tree: a binder-aware IR distinct from core/uplc.Term, one level
// above the wire-format term language. It exercises dependency analysis,
// dominator-style placement, and tree reconstruction the same way the
// teacher's core/vm jump table exercises opcode dispatch — a single,
// self-contained illustration of the optimizer surface rather than a full
// optimizing compiler.
package ir

// Node is one IR tree node. Unlike core/uplc.Term, a Node additionally
// carries Let bindings with scoping flags; it is still a tree, never a DAG.
type Node interface {
	isNode()
}

// LetFlag marks how a let binding may be moved.
type LetFlag int

const (
	// Plain lets are strict and are left untouched by the float pass.
	Plain LetFlag = iota
	// Lazy lets are float-pass candidates: their RHS is only evaluated if a
	// use is reached, so moving the binding closer to its uses cannot change
	// observable behavior (aside from trace ordering, per spec.md §8).
	Lazy
	// Recursive lets may refer to their own binding in their RHS and are
	// left untouched; floating would require proving termination-preserving
	// placement, which this pass does not attempt.
	Recursive
)

func (f LetFlag) String() string {
	switch f {
	case Lazy:
		return "lazy"
	case Recursive:
		return "rec"
	default:
		return "plain"
	}
}

// Binding is one name/RHS pair inside a Let. Name is unique within its own
// Let but may shadow an outer binding of the same name; the float pass does
// no alpha-renaming.
type Binding struct {
	Name string
	Rhs  Node
}

// Let binds Bindings in Body. A multi-binding Let groups bindings that share
// a flag and were declared together; the float pass treats Lazy bindings
// within one Let independently of each other.
type Let struct {
	Bindings []Binding
	Body     Node
	Flag     LetFlag
}

// Lambda is a single-argument abstraction; Param is a display name, used (as
// opposed to core/uplc's de-Bruijn terms) because the IR is still
// name-scoped at this level.
type Lambda struct {
	Param string
	Body  Node
}

// Apply is function application. Neither Function nor Argument is itself a
// legal let-floating insertion point; nested structure under either position
// may still receive a floated binding.
type Apply struct {
	Function Node
	Argument Node
}

// IfThenElse is a three-way conditional. Cond is an illegal insertion point;
// Then and Else are legal ones.
type IfThenElse struct {
	Cond Node
	Then Node
	Else Node
}

// CaseBranch is one arm of a Case: Vars are the pattern's bound names (bound
// fresh in Body's scope), Body is a legal insertion point.
type CaseBranch struct {
	Vars []string
	Body Node
}

// Case scrutinises Scrutinee (an illegal insertion point) and dispatches to
// the matching Branch.
type Case struct {
	Scrutinee Node
	Branches  []CaseBranch
}

// And/Or are boolean connectives, kept distinct from a general builtin
// application so constant-folding and the float pass can reason about
// short-circuit evaluation order.
type And struct{ Left, Right Node }
type Or struct{ Left, Right Node }

// Cast is a type-level annotation with no runtime effect; it exists so the
// IR can carry the annotations spec.md §4.6 mentions without the float pass
// having to special-case every possible annotation shape.
type Cast struct {
	Body Node
	Type string
}

// ErrorNode unconditionally fails evaluation, the IR analogue of
// core/uplc.ErrorTerm.
type ErrorNode struct{}

// Var references a binder by name (IR scoping is name-based, not
// de-Bruijn-indexed; the lowering to core/uplc.Term resolves names to
// indices).
type Var struct {
	Name string
}

// ExternalVar references a name with no local binder in this tree (e.g. a
// top-level definition or a builtin alias) — spec.md §4.6 Phase 2 explicitly
// ignores these when computing a binding's dependencies.
type ExternalVar struct {
	Name string
}

// Const wraps a literal value; the float pass treats it as a leaf with no
// dependencies.
type Const struct {
	Value interface{}
}

// Builtin references a builtin function by name, another dependency-free
// leaf.
type Builtin struct {
	Name string
}

func (*Let) isNode()         {}
func (*Lambda) isNode()      {}
func (*Apply) isNode()       {}
func (*IfThenElse) isNode()  {}
func (*Case) isNode()        {}
func (*And) isNode()         {}
func (*Or) isNode()          {}
func (*Cast) isNode()        {}
func (*ErrorNode) isNode()   {}
func (*Var) isNode()         {}
func (*ExternalVar) isNode() {}
func (*Const) isNode()       {}
func (*Builtin) isNode()     {}
